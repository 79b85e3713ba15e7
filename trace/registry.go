// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Resampler converts a trace to a new sampling rate. The returned trace keeps
// the station, start time and distance of the input.
type Resampler interface {
	Resample(tr *Trace, rate float64) (*Trace, error)
}

// Registry of resamplers by method name (e.g., "fft", "cubic").
type Registry struct {
	methods map[string]Resampler

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[string]Resampler),
		mtx:     &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry holding the built-in methods.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("fft", FFT{})
	reg.Register("cubic", Cubic{})

	return reg
}

func (r *Registry) Register(name string, m Resampler) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.methods[name] = m
}

func (r *Registry) Get(name string) (Resampler, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	m, ok := r.methods[name]
	return m, ok
}

// Lookup is Get with an ErrUnknownMethod error for missing names.
func (r *Registry) Lookup(name string) (Resampler, error) {
	m, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownMethod, name, r.Names())
	}
	return m, nil
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}

func checkResample(tr *Trace, rate float64) error {
	if tr.Len() == 0 {
		return ErrEmptyTrace
	}
	if !validRate(tr.SampleRate) || !validRate(rate) {
		return ErrInvalidRate
	}
	return nil
}

// outputLen is the number of samples a trace of n samples holds at the new rate,
// truncated toward zero.
func outputLen(n int, srcRate, dstRate float64) int {
	return int(float64(n) / (srcRate / dstRate))
}
