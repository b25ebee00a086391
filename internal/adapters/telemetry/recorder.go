// Package telemetry provides the tracing adapters: a progrock-backed
// recorder for interactive use and a no-op tracer for tests.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/reel/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock library. Every span
// becomes a vertex on the tape, so a render shows up as a live tree of
// expansion steps.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

var _ ports.Tracer = (*Recorder)(nil)

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex for the span. Names may repeat across an
// expansion, so each vertex gets a unique digest.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	return ctx, &Span{vertex: r.rec.Vertex(d, name)}
}

// EmitPlan records the planned roots as one vertex so the tape shows the
// whole evaluation up front.
func (r *Recorder) EmitPlan(_ context.Context, rootNames []string) {
	d := digest.FromString(fmt.Sprintf("plan#%d", r.seq.Add(1)))
	v := r.rec.Vertex(d, "plan: "+strings.Join(rootNames, ", "))
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	failed atomic.Bool
}

var _ ports.Span = (*Span)(nil)

// End completes the vertex. A span that recorded an error is already done.
func (s *Span) End() {
	if !s.failed.Load() {
		s.vertex.Done(nil)
	}
}

// RecordError completes the vertex with the error.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.failed.Store(true)
	s.vertex.Done(err)
}

// SetAttribute surfaces a key-value pair on the vertex output. A cached
// attribute additionally marks the vertex as a cache hit.
func (s *Span) SetAttribute(key string, value any) {
	if key == "reel.cached" {
		if hit, ok := value.(bool); ok && hit {
			s.vertex.Cached()
			return
		}
	}
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// Write captures free-form output on the vertex.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}
