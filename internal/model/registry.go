package model

import (
	"fmt"
	"sort"

	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/resonance"
)

// Registry maps channel and resonance names to their definitions.
type Registry struct {
	channels   map[string]func() kinematics.Masses
	resonances map[string]func() (resonance.Parameters, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		channels:   make(map[string]func() kinematics.Masses),
		resonances: make(map[string]func() (resonance.Parameters, error)),
	}

	r.channels["d3pi"] = kinematics.D3Pi
	r.channels["dkpipi"] = kinematics.DKPiPi

	for _, name := range resonance.Names() {
		r.resonances[name] = func() (resonance.Parameters, error) { return resonance.Lookup(name) }
	}

	return r
}

// RegisterChannel adds or replaces a decay channel.
func (r *Registry) RegisterChannel(name string, fn func() kinematics.Masses) {
	r.channels[name] = fn
}

func (r *Registry) GetChannel(name string) (kinematics.Masses, error) {
	fn, ok := r.channels[name]
	if !ok {
		return kinematics.Masses{}, fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}
	return fn(), nil
}

func (r *Registry) GetResonance(name string) (resonance.Parameters, error) {
	fn, ok := r.resonances[name]
	if !ok {
		return resonance.Parameters{}, fmt.Errorf("%w: %s", resonance.ErrUnknownResonance, name)
	}
	return fn()
}

func (r *Registry) ListChannels() []string { return sortedKeys(r.channels) }

func (r *Registry) ListResonances() []string { return sortedKeys(r.resonances) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
