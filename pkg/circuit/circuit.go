// Package circuit implements the top-level aggregate: it owns the
// component list and the Unknown Registry, drives registration, holds the
// current and previous solution vectors, and exposes Transient.
package circuit

import (
	"github.com/kestrel-ep/circuitsim/pkg/device"
	"github.com/kestrel-ep/circuitsim/pkg/registry"
)

// Circuit is the top-level aggregate described in spec §3/§4.6.
type Circuit struct {
	components []device.Component
	registry   *registry.Registry

	ground *device.Ground
	vin    *device.VoltageIn
	vout   *device.VoltageOut

	groundIdx int
	outPosID  int
	outNegID  int

	soln     []float64 // committed state at the last converged time step
	prevSoln []float64 // running Newton iterate during the current step
}

// New scans components for the required (single) Ground, VoltageIn, and
// VoltageOut, registers all unknowns in declaration order, and allocates
// zeroed soln/prevSoln vectors. Returns a *StructuralError when Ground,
// VoltageIn, or VoltageOut is missing or duplicated.
func New(components []device.Component) (*Circuit, error) {
	c := &Circuit{components: components, registry: registry.New()}

	var grounds []*device.Ground
	var vins []*device.VoltageIn
	var vouts []*device.VoltageOut
	for _, comp := range components {
		switch d := comp.(type) {
		case *device.Ground:
			grounds = append(grounds, d)
		case *device.VoltageIn:
			vins = append(vins, d)
		case *device.VoltageOut:
			vouts = append(vouts, d)
		}
	}
	if len(grounds) != 1 {
		return nil, &StructuralError{Kind: "Ground", Count: len(grounds)}
	}
	if len(vins) != 1 {
		return nil, &StructuralError{Kind: "VoltageIn", Count: len(vins)}
	}
	if len(vouts) != 1 {
		return nil, &StructuralError{Kind: "VoltageOut", Count: len(vouts)}
	}
	c.ground, c.vin, c.vout = grounds[0], vins[0], vouts[0]

	for _, comp := range components {
		for _, unknown := range comp.Unknowns() {
			c.registry.Register(unknown)
		}
	}
	c.registry.Freeze()

	c.groundIdx = c.registry.MustIndex(device.VoltageLabel(c.ground.Nodes()[0]))
	outNodes := c.vout.Nodes()
	c.outPosID = c.registry.MustIndex(device.VoltageLabel(outNodes[0]))
	c.outNegID = c.registry.MustIndex(device.VoltageLabel(outNodes[1]))

	n := c.registry.Len()
	c.soln = make([]float64, n)
	c.prevSoln = make([]float64, n)

	return c, nil
}

// N returns the total number of registered unknowns.
func (c *Circuit) N() int { return c.registry.Len() }

// GroundIndex returns the dense index of the ground voltage unknown.
func (c *Circuit) GroundIndex() int { return c.groundIdx }

// Registry exposes the frozen Unknown Registry, for diagnostics and tests.
func (c *Circuit) Registry() *registry.Registry { return c.registry }

// Solution returns the committed solution vector from the last converged
// time step, column-aligned with the registry index.
func (c *Circuit) Solution() []float64 { return c.soln }

// VoltageIn returns the circuit's single VoltageIn component.
func (c *Circuit) VoltageIn() *device.VoltageIn { return c.vin }

// OutputVoltage returns soln[out_pos] - soln[out_neg] for the last
// committed step.
func (c *Circuit) OutputVoltage() float64 {
	return c.soln[c.outPosID] - c.soln[c.outNegID]
}
