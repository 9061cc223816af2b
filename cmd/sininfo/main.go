// Command sininfo prints properties of sinusoids given as
// amplitude,frequency,phase triples.
//
// Usage:
//
//	sininfo [flags] amp,freq,phase [amp,freq,phase ...]
//
// For each sinusoid it prints the period, radial frequency and phasor in
// rectangular and polar form.
//
// Examples:
//
//	sininfo 1,440,0
//	sininfo -samples 8 -rate 8 1,1,-1.5708
//	sininfo -sum -- -3,1,0 4,1,-1.5708
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-phasor/cplx"
	"github.com/cwbudde/algo-phasor/signal"
)

func main() {
	sum := flag.Bool("sum", false, "phasor-add all given sinusoids (frequencies must match)")
	samples := flag.Int("samples", 0, "print the first N samples of each sinusoid")
	rate := flag.Float64("rate", 48000, "sample rate for -samples")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sininfo [flags] amp,freq,phase [amp,freq,phase ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of sinusoids A·cos(2πf·t + θ).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sininfo 1,440,0\n")
		fmt.Fprintf(os.Stderr, "  sininfo -samples 8 -rate 8 1,1,-1.5708\n")
		fmt.Fprintf(os.Stderr, "  sininfo -sum -- -3,1,0 4,1,-1.5708\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *samples > 0 && *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: sample rate must be > 0: %v\n", *rate)
		os.Exit(1)
	}

	sinusoids, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTable(sinusoids)

	if *sum {
		if err := printSum(sinusoids); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *samples > 0 {
		printSamples(sinusoids, *samples, *rate)
	}
}

func parseArgs(args []string) ([]signal.Sinusoid[float64], error) {
	out := make([]signal.Sinusoid[float64], 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid sinusoid %q: want amp,freq,phase", arg)
		}
		vals := make([]float64, 3)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid sinusoid %q: %v", arg, err)
			}
			vals[i] = v
		}
		out = append(out, signal.New(vals[0], vals[1], vals[2]))
	}
	return out, nil
}

func printTable(sinusoids []signal.Sinusoid[float64]) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Amplitude\tFrequency\tPhase [rad]\tPeriod\tRadial [rad/s]\tPhasor (re, im)\tPhasor (r, θ)\n")
	fmt.Fprintf(tw, "---------\t---------\t-----------\t------\t--------------\t---------------\t-------------\n")

	for _, s := range sinusoids {
		p := s.Phasor()
		r, theta := cplx.Polar(p)
		fmt.Fprintf(tw, "%g\t%g\t%g\t%g\t%.6f\t(%.6f, %.6f)\t(%.6f, %.6f)\n",
			s.Amplitude,
			s.Frequency,
			s.Phase,
			s.Period(),
			s.RadialFrequency(),
			p.Real, p.Imag,
			r, theta,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSum(sinusoids []signal.Sinusoid[float64]) error {
	if len(sinusoids) < 2 {
		return errors.New("-sum needs at least two sinusoids")
	}
	sum := sinusoids[0]
	for _, s := range sinusoids[1:] {
		var err error
		sum, err = sum.Add(s)
		if err != nil {
			return err
		}
	}
	fmt.Printf("sum: amplitude=%.6f frequency=%g phase=%.6f\n", sum.Amplitude, sum.Frequency, sum.Phase)
	return nil
}

func printSamples(sinusoids []signal.Sinusoid[float64], n int, rate float64) {
	r := signal.NewRenderer(signal.WithSampleRate(rate))
	for i, s := range sinusoids {
		block := r.Render(s, 0, n)
		fmt.Printf("sinusoid %d:", i)
		for _, v := range block {
			fmt.Printf(" %.6f", v)
		}
		fmt.Println()
	}
}
