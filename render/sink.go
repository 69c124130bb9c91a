package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/godfa/dfa"
)

// Default plot dimensions used when a sink leaves them zero.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Sink receives finished plots.
type Sink interface {
	Save(p *plot.Plot, name string) error
}

// DirSink writes each plot as <Dir>/<name>.png, creating Dir when needed.
type DirSink struct {
	Dir    string
	Width  vg.Length
	Height vg.Length
}

// Path returns the file a plot called name is written to.
func (s *DirSink) Path(name string) string {
	return filepath.Join(s.Dir, name+".png")
}

// Save renders p to a PNG file. Failures wrap dfa.ErrIOFailure.
func (s *DirSink) Save(p *plot.Plot, name string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}
	w, h := size(s.Width, s.Height)
	if err := p.Save(w, h, s.Path(name)); err != nil {
		return fmt.Errorf("%w: saving %s: %v", dfa.ErrIOFailure, name, err)
	}
	return nil
}

// MemorySink keeps rendered PNG images in memory, keyed by plot name.
type MemorySink struct {
	Width  vg.Length
	Height vg.Length

	mu     sync.Mutex
	images map[string][]byte
}

// Save renders p to PNG and stores the bytes under name.
func (s *MemorySink) Save(p *plot.Plot, name string) error {
	w, h := size(s.Width, s.Height)
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: %v", dfa.ErrIOFailure, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.images == nil {
		s.images = make(map[string][]byte)
	}
	s.images[name] = buf.Bytes()
	return nil
}

// Image returns the PNG stored under name.
func (s *MemorySink) Image(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.images[name]
	return b, ok
}

// Names returns the stored plot names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func size(w, h vg.Length) (vg.Length, vg.Length) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}
