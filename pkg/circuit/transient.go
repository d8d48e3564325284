package circuit

import (
	"log"
	"math"

	"github.com/kestrel-ep/circuitsim/internal/consts"
	"github.com/kestrel-ep/circuitsim/pkg/solver"
	"github.com/kestrel-ep/circuitsim/pkg/stream"
)

// Options configures Transient's Newton loop. Zero values fall back to
// the package defaults (consts.DefaultMaxIterations, consts.DefaultTolerance).
type Options struct {
	MaxIterations int
	Tolerance     float64
}

func (o Options) withDefaults() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = consts.DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = consts.DefaultTolerance
	}
	return o
}

// Transient drives the time-stepped simulation described in spec §4.6:
// pull a sample from in, seed Newton with the last committed solution,
// iterate to convergence, commit, and emit (t, vin, vout) to out. A
// *solver.Singular failure propagates as a fatal error with the failing
// step's time attached. An input stream exhausted before any samples
// yields no output rows and is not an error.
func (c *Circuit) Transient(in stream.Source, out stream.Sink, opts Options) error {
	opts = opts.withDefaults()
	dt := in.Period()
	c.vin.SetPeriod(dt)

	for {
		t, v, ok, err := in.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		c.vin.SetSample(v)
		copy(c.prevSoln, c.soln)

		converged := false
		for iter := 0; iter < opts.MaxIterations; iter++ {
			sys := solver.New(c.N(), c.groundIdx, c.registry.Labels())
			for _, comp := range c.components {
				comp.Stamp(sys, c.registry.MustIndex, c.soln, c.prevSoln, dt, t)
			}

			deltas, err := sys.Solve()
			if err != nil {
				return &TransientError{Time: t, Err: err}
			}

			maxDelta := 0.0
			for i, d := range deltas {
				if math.IsNaN(d) {
					log.Printf("circuit: NaN delta at t=%g (unknown %q); treating step as non-converged", t, c.registry.Labels()[i])
					maxDelta = math.NaN()
					break
				}
				if abs := math.Abs(d); abs > maxDelta {
					maxDelta = abs
				}
			}
			for i := range c.prevSoln {
				c.prevSoln[i] += deltas[i]
			}

			if math.IsNaN(maxDelta) {
				break
			}
			if maxDelta < opts.Tolerance {
				converged = true
				break
			}
		}
		if !converged {
			log.Printf("circuit: step at t=%g did not converge within %d iterations; committing last iterate", t, opts.MaxIterations)
		}

		copy(c.soln, c.prevSoln)

		if err := out.Write(t, v, c.OutputVoltage()); err != nil {
			return err
		}
	}
}
