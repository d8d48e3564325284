// Command circuitsim reads a netlist, runs a transient simulation driven
// by an input voltage stream, and writes the resulting (time, vin, vout)
// series. It is a thin driver: all simulation logic lives in the library
// packages; main only wires flags, files, and exit codes.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/kestrel-ep/circuitsim/pkg/circuit"
	"github.com/kestrel-ep/circuitsim/pkg/netlist"
	"github.com/kestrel-ep/circuitsim/pkg/solver"
	"github.com/kestrel-ep/circuitsim/pkg/stream"
	"github.com/kestrel-ep/circuitsim/pkg/util"
)

func main() {
	netlistPath := flag.String("c", "", "path to the netlist file (required)")
	outPath := flag.String("o", "", "path to write the (t, vin, vout) output series (default stdout)")
	inputPath := flag.String("i", "", "path to the input voltage sample stream (default stdin)")
	maxIterations := flag.Int("max-iterations", 0, "Newton iteration cap per time step (0 = package default)")
	tolerance := flag.Float64("tolerance", 0, "Newton convergence tolerance (0 = package default)")
	flag.Parse()

	if *netlistPath == "" {
		fmt.Fprintln(os.Stderr, "circuitsim: -c <netlist> is required")
		flag.Usage()
		os.Exit(2)
	}

	netlistFile, err := os.Open(*netlistPath)
	if err != nil {
		log.Fatalf("circuitsim: %v", err)
	}
	defer netlistFile.Close()

	components, err := netlist.Parse(netlistFile)
	if err != nil {
		log.Fatalf("circuitsim: parsing netlist: %v", err)
	}

	ckt, err := circuit.New(components)
	if err != nil {
		log.Fatalf("circuitsim: building circuit: %v", err)
	}

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("circuitsim: %v", err)
		}
		defer f.Close()
		in = f
	}

	source, err := stream.NewReader(in)
	if err != nil {
		log.Fatalf("circuitsim: reading input stream: %v", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("circuitsim: %v", err)
		}
		defer f.Close()
		out = f
	}
	sink := &summarizingSink{Sink: stream.NewWriter(out)}

	opts := circuit.Options{MaxIterations: *maxIterations, Tolerance: *tolerance}
	if err := ckt.Transient(source, sink, opts); err != nil {
		if singular, ok := asSingular(err); ok {
			singular.Dump(os.Stderr)
		}
		log.Fatalf("circuitsim: %v", err)
	}

	if w, ok := sink.Sink.(*stream.Writer); ok {
		if err := w.Flush(); err != nil {
			log.Fatalf("circuitsim: flushing output: %v", err)
		}
	}

	fmt.Fprintf(os.Stderr, "circuitsim: %d steps, final t=%s, peak |vout|=%s\n",
		sink.steps, util.FormatValueFactor(sink.lastT, "s"), util.FormatValueFactor(sink.peakVout, "V"))
}

// summarizingSink forwards every triple to the underlying sink while
// tracking the run's length and peak output magnitude for the closing
// summary line.
type summarizingSink struct {
	stream.Sink
	steps    int
	lastT    float64
	peakVout float64
}

func (s *summarizingSink) Write(t, vin, vout float64) error {
	s.steps++
	s.lastT = t
	if abs := math.Abs(vout); abs > s.peakVout {
		s.peakVout = abs
	}
	return s.Sink.Write(t, vin, vout)
}

// asSingular unwraps err looking for a *solver.Singular, so main can dump
// the offending equation set to stderr before exiting.
func asSingular(err error) (*solver.Singular, bool) {
	for err != nil {
		if s, ok := err.(*solver.Singular); ok {
			return s, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
