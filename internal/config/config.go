package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/dalitz/internal/kinematics"
	"github.com/san-kum/dalitz/internal/mcint"
	"github.com/san-kum/dalitz/internal/model"
	"github.com/san-kum/dalitz/internal/resonance"
	"gopkg.in/yaml.v3"
)

const (
	DefaultChannel = "d3pi"
	DefaultSamples = 100000
	DefaultSeed    = 1
	DefaultRadius  = 1.0
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config describes one integration run.
type Config struct {
	Name       string            `yaml:"name,omitempty"`
	Channel    string            `yaml:"channel"`
	Masses     *MassesConfig     `yaml:"masses,omitempty"`
	Symmetrize bool              `yaml:"symmetrize"`
	Resonances []ResonanceConfig `yaml:"resonances"`
	Bounds     []mcint.Interval  `yaml:"bounds,omitempty"`
	Samples    int               `yaml:"samples"`
	Seed       uint64            `yaml:"seed"`
	Workers    int               `yaml:"workers"`
}

// MassesConfig overrides the channel masses. A zero B or C means the
// daughter is identical to a.
type MassesConfig struct {
	Parent       float64 `yaml:"parent"`
	A            float64 `yaml:"a"`
	B            float64 `yaml:"b,omitempty"`
	C            float64 `yaml:"c,omitempty"`
	ParentRadius float64 `yaml:"parent_radius"`
}

// ResonanceConfig names a catalog resonance and overrides its fields. A name
// missing from the catalog defines a custom resonance from the overrides.
type ResonanceConfig struct {
	Name      string   `yaml:"name"`
	Shape     string   `yaml:"shape,omitempty"`
	Spin      *int     `yaml:"spin,omitempty"`
	Mass      *float64 `yaml:"mass,omitempty"`
	Width     *float64 `yaml:"width,omitempty"`
	Radius    *float64 `yaml:"radius,omitempty"`
	GPiPi     *float64 `yaml:"g_pipi,omitempty"`
	GKK       *float64 `yaml:"g_kk,omitempty"`
	Magnitude *float64 `yaml:"magnitude,omitempty"`
	PhaseDeg  float64  `yaml:"phase_deg,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Channel:    DefaultChannel,
		Resonances: []ResonanceConfig{{Name: "f0(980)"}},
		Samples:    DefaultSamples,
		Seed:       DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads the YAML file at path over a copy of base. Keys absent from
// the file keep the values of base; lists present in the file replace it.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a copy that shares no slices with c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Masses != nil {
		m := *c.Masses
		out.Masses = &m
	}
	out.Resonances = append([]ResonanceConfig(nil), c.Resonances...)
	out.Bounds = append([]mcint.Interval(nil), c.Bounds...)
	return &out
}

func (c *Config) Validate() error {
	if c.Channel == "" && c.Masses == nil {
		return fmt.Errorf("%w: channel or masses required", ErrInvalidConfig)
	}
	if len(c.Resonances) == 0 {
		return fmt.Errorf("%w: resonances: none given", ErrInvalidConfig)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples: must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers: must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if len(c.Bounds) > 0 {
		if err := mcint.Bounds(c.Bounds).Validate(); err != nil {
			return fmt.Errorf("%w: bounds: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// DecayMasses resolves the masses from the override or the channel.
func (c *Config) DecayMasses(reg *model.Registry) (kinematics.Masses, error) {
	if c.Masses == nil {
		return reg.GetChannel(c.Channel)
	}
	sibling := func(m float64) kinematics.Sibling {
		if m == 0 {
			return kinematics.SameAsA
		}
		return kinematics.Mass(m)
	}
	mc := c.Masses
	return kinematics.NewMasses(mc.Parent, mc.A, sibling(mc.B), sibling(mc.C), mc.ParentRadius)
}

// Parameters resolves every configured resonance.
func (c *Config) Parameters(reg *model.Registry) ([]resonance.Parameters, error) {
	out := make([]resonance.Parameters, 0, len(c.Resonances))
	for i, rc := range c.Resonances {
		p, err := rc.parameters(reg)
		if err != nil {
			return nil, fmt.Errorf("resonances[%d]: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (rc ResonanceConfig) parameters(reg *model.Registry) (resonance.Parameters, error) {
	p, err := reg.GetResonance(rc.Name)
	if errors.Is(err, resonance.ErrUnknownResonance) {
		p = resonance.Parameters{Name: rc.Name, Radius: DefaultRadius, Magnitude: 1}
	} else if err != nil {
		return p, err
	}

	if rc.Shape != "" {
		s, err := resonance.ParseShape(rc.Shape)
		if err != nil {
			return p, err
		}
		p.Shape = s
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	if rc.Spin != nil {
		p.Spin = *rc.Spin
	}
	set(&p.Mass, rc.Mass)
	set(&p.Width, rc.Width)
	set(&p.Radius, rc.Radius)
	set(&p.GPiPi, rc.GPiPi)
	set(&p.GKK, rc.GKK)
	set(&p.Magnitude, rc.Magnitude)
	p.Phase = rc.PhaseDeg * math.Pi / 180

	return p, p.Validate()
}

// Build validates the configuration and constructs its model.
func (c *Config) Build(reg *model.Registry) (*model.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, err := c.DecayMasses(reg)
	if err != nil {
		return nil, err
	}
	params, err := c.Parameters(reg)
	if err != nil {
		return nil, err
	}
	return model.New(m, params, c.Symmetrize)
}

// IntegrationBounds returns the configured bounds, or nil to integrate over
// the model's bounding box.
func (c *Config) IntegrationBounds() mcint.Bounds {
	if len(c.Bounds) == 0 {
		return nil
	}
	return mcint.Bounds(c.Bounds)
}
