package domain

// Composition is a named set of root component instances to evaluate. The
// editing collaborator owns the structure; the engine only reads it.
type Composition struct {
	Name  string
	Roots []*ComponentInstance
}
