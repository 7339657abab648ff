package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/veminovici/muzze"
)

var (
	// ErrNotFound is returned when no scale is registered under a name.
	ErrNotFound = errors.New("scale not found")
	// ErrDuplicateName is returned when a name is already registered.
	ErrDuplicateName = errors.New("scale name already registered")
)

// maxInterval bounds the inverted index: scale intervals live in [1,16).
const maxInterval = 16

// Options configures a Catalog.
type Options struct {
	// Logger receives debug-level registration and lookup events.
	// Defaults to NoopLogger.
	Logger *Logger
}

// Catalog is a registry of named scales with a per-interval inverted
// index. Safe for concurrent use.
type Catalog struct {
	mu sync.RWMutex

	names      []string
	scales     []muzze.Scale
	byName     map[string]uint32
	byInterval [maxInterval]*roaring.Bitmap

	logger *Logger
}

// New creates an empty Catalog.
func New(optFns ...func(o *Options)) *Catalog {
	opts := Options{
		Logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Catalog{
		byName: make(map[string]uint32),
		logger: opts.Logger,
	}
	for i := range c.byInterval {
		c.byInterval[i] = roaring.New()
	}
	return c
}

// WithLogger sets the catalog logger.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// Add registers a scale under a unique name.
func (c *Catalog) Add(name string, s muzze.Scale) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	id := uint32(len(c.scales))
	c.names = append(c.names, name)
	c.scales = append(c.scales, s)
	c.byName[name] = id

	for iv := range s.Intervals() {
		if int(iv) < maxInterval {
			c.byInterval[iv].Add(id)
		}
	}

	c.logger.WithName(name).Debug("scale registered", "pattern", s.Inner())
	return nil
}

// Get returns the scale registered under name.
func (c *Catalog) Get(name string) (muzze.Scale, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.byName[name]
	if !ok {
		return muzze.Scale{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.scales[id], nil
}

// Len returns the number of registered scales.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scales)
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Containing returns the names of scales containing every given semitone
// interval, in registration order. With no intervals it returns every
// registered name.
func (c *Catalog) Containing(semitones ...uint8) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(semitones) == 0 {
		out := make([]string, len(c.names))
		copy(out, c.names)
		return out
	}

	var acc *roaring.Bitmap
	for _, st := range semitones {
		if int(st) >= maxInterval {
			return nil
		}
		if acc == nil {
			acc = c.byInterval[st].Clone()
			continue
		}
		acc.And(c.byInterval[st])
		if acc.IsEmpty() {
			return nil
		}
	}

	out := make([]string, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		out = append(out, c.names[it.Next()])
	}

	c.logger.WithCount(len(out)).Debug("containment query", "intervals", semitones)
	return out
}

// Supersets returns the names of scales containing every interval of s.
func (c *Catalog) Supersets(s muzze.Scale) []string {
	var semitones []uint8
	for iv := range s.Intervals() {
		semitones = append(semitones, uint8(iv))
	}
	return c.Containing(semitones...)
}

// Builtin returns a catalog pre-loaded with the named scale constants.
func Builtin(optFns ...func(o *Options)) *Catalog {
	c := New(optFns...)

	builtins := []struct {
		name  string
		scale muzze.Scale
	}{
		{"major", muzze.Major},
		{"natural-minor", muzze.NaturalMinor},
		{"harmonic-minor", muzze.HarmonicMinor},
		{"melodic-minor", muzze.MelodicMinor},
		{"dorian", muzze.Dorian},
		{"phrygian", muzze.Phrygian},
		{"lydian", muzze.Lydian},
		{"mixolydian", muzze.Mixolydian},
		{"locrian", muzze.Locrian},
		{"major-pentatonic", muzze.MajorPentatonic},
		{"minor-pentatonic", muzze.MinorPentatonic},
		{"blues", muzze.Blues},
		{"whole-tone", muzze.WholeTone},
		{"chromatic", muzze.Chromatic},
	}
	for _, b := range builtins {
		// Names are unique by construction.
		_ = c.Add(b.name, b.scale)
	}
	return c
}
