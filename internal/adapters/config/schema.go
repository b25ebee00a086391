package config

// CompositionFile represents the structure of a composition YAML file.
type CompositionFile struct {
	Version     string     `yaml:"version"`
	Composition string     `yaml:"composition"`
	Clips       []*ClipDTO `yaml:"clips"`
}

// ClipDTO represents one clip entry in the composition file. Params are
// matched by name against the class's fixed parameter slots; the duration
// is in seconds.
type ClipDTO struct {
	Name     string         `yaml:"name"`
	Class    string         `yaml:"class"`
	Duration float64        `yaml:"duration"`
	Params   map[string]any `yaml:"params"`
}
