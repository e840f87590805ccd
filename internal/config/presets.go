package config

import (
	"fmt"
	"sort"
	"strings"
)

func ptr[T any](v T) *T { return &v }

var Presets = map[string]map[string]*Config{
	"d3pi": {
		"f0": {
			Channel: "d3pi", Samples: DefaultSamples, Seed: DefaultSeed,
			Resonances: []ResonanceConfig{{Name: "f0(980)"}},
		},
		"f0-rho": {
			Channel: "d3pi", Samples: DefaultSamples, Seed: DefaultSeed,
			Resonances: []ResonanceConfig{
				{Name: "f0(980)"},
				{Name: "rho(770)", Magnitude: ptr(0.5), PhaseDeg: 30},
			},
		},
		"flat-flatte": {
			Channel: "d3pi", Samples: 1000000, Seed: DefaultSeed,
			Resonances: []ResonanceConfig{
				{Name: "nr"},
				{Name: "f0(980)"},
			},
		},
		"full": {
			Channel: "d3pi", Samples: 1000000, Seed: DefaultSeed, Symmetrize: true,
			Resonances: []ResonanceConfig{
				{Name: "nr", Magnitude: ptr(0.8)},
				{Name: "f0(600)", Magnitude: ptr(1.2), PhaseDeg: -60},
				{Name: "f0(980)", Magnitude: ptr(0.4), PhaseDeg: 20},
				{Name: "rho(770)"},
				{Name: "f0(1370)", Magnitude: ptr(0.7), PhaseDeg: 110},
				{Name: "f0(1500)", Magnitude: ptr(0.3), PhaseDeg: -20},
				{Name: "f2(1270)", Magnitude: ptr(0.6), PhaseDeg: -150},
			},
		},
	},
	"dkpipi": {
		"kstar": {
			Channel: "dkpipi", Samples: DefaultSamples, Seed: DefaultSeed,
			Resonances: []ResonanceConfig{
				{Name: "K*(892)"},
				{Name: "K0*(1430)", Magnitude: ptr(0.5)},
			},
		},
		"kstar-nr": {
			Channel: "dkpipi", Samples: DefaultSamples, Seed: DefaultSeed,
			Resonances: []ResonanceConfig{
				{Name: "nr", Magnitude: ptr(0.6)},
				{Name: "K*(892)"},
				{Name: "K0*(1430)", Magnitude: ptr(0.5), PhaseDeg: 60},
			},
		},
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(channel, preset string) (*Config, error) {
	channelPresets, ok := Presets[channel]
	if !ok {
		return nil, fmt.Errorf("%w: channel %s", ErrUnknownPreset, channel)
	}
	cfg, ok := channelPresets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPreset, channel, preset)
	}
	out := cfg.Clone()
	out.Name = channel + "/" + preset
	return out, nil
}

// Lookup resolves a "channel/preset" name.
func Lookup(name string) (*Config, error) {
	channel, preset, ok := strings.Cut(name, "/")
	if !ok {
		return nil, fmt.Errorf("%w: %q is not channel/preset", ErrUnknownPreset, name)
	}
	return GetPreset(channel, preset)
}

func ListPresets(channel string) []string {
	channelPresets, ok := Presets[channel]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(channelPresets))
	for name := range channelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListChannels() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
