package resonance

import (
	"fmt"
	"sort"
)

// catalog holds pole parameters with unit production coefficient. The f
// states decay to pi pi, the K* states to K pi.
var catalog = map[string]Parameters{
	"f0(980)": {
		Name: "f0(980)", Spin: 0, Mass: 0.980, Radius: 1.0, Magnitude: 1,
		Shape: Flatte, GPiPi: 0.329, GKK: 0.658,
	},
	"f0(600)": {
		Name: "f0(600)", Spin: 0, Mass: 0.800, Width: 0.800, Radius: 1.0, Magnitude: 1,
	},
	"f0(1370)": {
		Name: "f0(1370)", Spin: 0, Mass: 1.350, Width: 0.350, Radius: 1.0, Magnitude: 1,
	},
	"f0(1500)": {
		Name: "f0(1500)", Spin: 0, Mass: 1.507, Width: 0.109, Radius: 1.0, Magnitude: 1,
	},
	"rho(770)": {
		Name: "rho(770)", Spin: 1, Mass: 0.770, Width: 0.1491, Radius: 1.0, Magnitude: 1,
	},
	"f2(1270)": {
		Name: "f2(1270)", Spin: 2, Mass: 1.2754, Width: 0.1852, Radius: 1.0, Magnitude: 1,
	},
	"K*(892)": {
		Name: "K*(892)", Spin: 1, Mass: 0.89166, Width: 0.0508, Radius: 1.0, Magnitude: 1,
	},
	"K0*(1430)": {
		Name: "K0*(1430)", Spin: 0, Mass: 1.425, Width: 0.270, Radius: 1.0, Magnitude: 1,
	},
	"nr": {
		Name: "nr", Magnitude: 1, Shape: Flat,
	},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Parameters, error) {
	p, ok := catalog[name]
	if !ok {
		return Parameters{}, fmt.Errorf("%w: %s", ErrUnknownResonance, name)
	}
	return p, nil
}

// Names returns the catalog entries in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
