package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/born-ml/kmath/internal/algebra"
	"github.com/born-ml/kmath/internal/nd"
	"github.com/born-ml/kmath/internal/ndalgebra"
	"github.com/born-ml/kmath/internal/parallel"
)

var errUnknownMode = errors.New("unknown mode")

func bench(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stdout)
	mode := fs.String("mode", "all", "Benchmark: all, read, write, ops")
	n := fs.Int("n", 1000, "Side of the n×n test structure")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("%w: -n must be positive, got %d", nd.ErrInvalidArgument, *n)
	}

	fmt.Fprintf(stdout, "kmath Performance Analysis\n")
	fmt.Fprintf(stdout, "==========================\n")
	fmt.Fprintf(stdout, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(stdout, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(stdout, "CPUs: %d\n", runtime.NumCPU())
	fmt.Fprintf(stdout, "Structure: %d×%d\n\n", *n, *n)

	switch *mode {
	case "all":
		for _, f := range []func(io.Writer, int) error{benchRead, benchWrite, benchOps} {
			if err := f(stdout, *n); err != nil {
				return err
			}
		}
		return nil
	case "read":
		return benchRead(stdout, *n)
	case "write":
		return benchWrite(stdout, *n)
	case "ops":
		return benchOps(stdout, *n)
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, *mode)
	}
}

func ones(n int) (*nd.BufferND[float64], []float64, error) {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 1
	}
	s, err := nd.Wrap(nd.Shape{n, n}, data)
	return s, data, err
}

// benchRead compares reading every element through the structure, through
// its buffer and straight from the backing slice.
func benchRead(w io.Writer, n int) error {
	fmt.Fprintf(w, "Structure Reading\n")
	fmt.Fprintf(w, "-----------------\n")

	s, data, err := ones(n)
	if err != nil {
		return err
	}
	indexer := s.Indexer()
	buf := s.Buffer()

	var sink float64
	read := func(get func(index []int) (float64, error)) (time.Duration, error) {
		start := time.Now()
		for index := range indexer.Indices() {
			v, err := get(index)
			if err != nil {
				return 0, err
			}
			sink += v
		}
		return time.Since(start), nil
	}

	structure := func(index []int) (float64, error) { return s.Get(index...) }
	buffer := func(index []int) (float64, error) {
		offset, err := indexer.Offset(index...)
		if err != nil {
			return 0, err
		}
		return buf.Get(offset)
	}
	array := func(index []int) (float64, error) {
		offset, err := indexer.Offset(index...)
		if err != nil {
			return 0, err
		}
		return data[offset], nil
	}

	// Warm-up.
	if _, err := read(structure); err != nil {
		return err
	}

	for _, c := range []struct {
		name string
		get  func([]int) (float64, error)
	}{
		{"Structure", structure},
		{"Buffer", buffer},
		{"Array", array},
	} {
		d, err := read(c.get)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s reading: %v\n", c.name, d)
	}
	fmt.Fprintf(w, "checksum: %g\n\n", sink)
	return nil
}

// benchWrite compares mapping x+1 through a context with a plain slice loop.
func benchWrite(w io.Writer, n int) error {
	fmt.Fprintf(w, "Structure Mapping\n")
	fmt.Fprintf(w, "-----------------\n")

	s, data, err := ones(n)
	if err != nil {
		return err
	}
	ops := ndalgebra.Float64()
	inc := func(v float64) float64 { return v + 1 }

	// Warm-up.
	if _, err := ops.Map(s, inc); err != nil {
		return err
	}

	start := time.Now()
	if _, err := ops.Map(s, inc); err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10s mapping: %v\n", "Structure", time.Since(start))

	start = time.Now()
	target := make([]float64, len(data))
	for i, v := range data {
		target[i] = v + 1
	}
	fmt.Fprintf(w, "%-10s mapping: %v\n", "Array", time.Since(start))

	start = time.Now()
	out := nd.NewBuffer(len(data), func(int) float64 { return 0 })
	for i, v := range data {
		if err := out.Set(i, v+1); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%-10s mapping: %v\n\n", "Buffer", time.Since(start))
	return nil
}

// benchOps times element-wise addition through the generic and the
// specialized float64 contexts.
func benchOps(w io.Writer, n int) error {
	fmt.Fprintf(w, "Context Addition\n")
	fmt.Fprintf(w, "----------------\n")

	s, _, err := ones(n)
	if err != nil {
		return err
	}

	contexts := []struct {
		name string
		ops  ndalgebra.FieldOps[float64]
	}{
		{"generic", ndalgebra.NewFieldOps[float64](algebra.Float64Field{})},
		{"float64", ndalgebra.Float64()},
		{"parallel", ndalgebra.NewFloat64FieldOps(parallel.DefaultConfig())},
	}

	elementsPerSecond := func(d time.Duration) float64 {
		return float64(n*n) / d.Seconds()
	}

	for _, c := range contexts {
		start := time.Now()
		if _, err := c.ops.Add(s, s); err != nil {
			return err
		}
		d := time.Since(start)
		fmt.Fprintf(w, "%-10s add: %v (%.2f Mops/s)\n", c.name, d, elementsPerSecond(d)/1e6)
	}
	fmt.Fprintln(w)
	return nil
}
