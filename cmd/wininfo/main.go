// Command wininfo prints spectral properties of window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without names it reports every window type.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -alpha 8 kaiser
//	wininfo -fft 512 -size 64 hann
//	wininfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/gain"
	"github.com/cwbudde/algo-rtdsp/dsp/window"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	size     int
	alpha    float64
	periodic bool
	bartlett bool
	fftSize  int
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.IntVar(&opt.size, "size", core.DefaultProcessorConfig().BlockSize, "window length in samples")
	fs.Float64Var(&opt.alpha, "alpha", math.NaN(), "shape parameter of kaiser, tukey and gauss")
	fs.BoolVar(&opt.periodic, "periodic", false, "use the periodic (DFT-even) form")
	fs.BoolVar(&opt.bartlett, "bartlett", false, "triangle reaches zero at both ends")
	fs.IntVar(&opt.fftSize, "fft", 0, "print the magnitude response from an FFT of this size instead of the summary")
	list := fs.Bool("list", false, "list available window names")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints spectral properties of window functions.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	if opt.size <= 0 {
		fmt.Fprintf(stderr, "error: -size must be > 0\n")
		return 2
	}

	types, err := resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return 1
	}

	if opt.fftSize > 0 {
		err = printResponse(stdout, types, opt)
	} else {
		err = printAnalysis(stdout, types, opt)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func printList(w io.Writer) {
	keys := make([]string, 0, len(window.Types()))
	for _, t := range window.Types() {
		keys = append(keys, t.Key())
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintln(w, k)
	}
}

func resolve(names []string) ([]window.Type, error) {
	if len(names) == 0 {
		return window.Types(), nil
	}

	types := make([]window.Type, 0, len(names))
	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}

func (o options) windowOptions(t window.Type) []window.Option {
	var opts []window.Option
	if o.periodic {
		opts = append(opts, window.WithPeriodic())
	}

	if o.bartlett {
		opts = append(opts, window.WithBartlett())
	}

	if window.Info(t).Parametric && !math.IsNaN(o.alpha) {
		opts = append(opts, window.WithAlpha(o.alpha))
	}

	return opts
}

func label(t window.Type, o options) string {
	m := window.Info(t)
	if !m.Parametric {
		return m.Name
	}

	a := m.DefaultAlpha
	if !math.IsNaN(o.alpha) && o.alpha >= 0 {
		a = o.alpha
	}

	return fmt.Sprintf("%s (a=%.2f)", m.Name, a)
}

func printAnalysis(w io.Writer, types []window.Type, o options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\t-------------\t--------------\t------------\n")

	for _, t := range types {
		a := window.Analyze(window.Generate(t, o.size, o.windowOptions(t)...))

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			label(t, o), o.size,
			a.CoherentGain, a.ENBW, a.Bandwidth3dB,
			a.HighestSidelobedB, a.FirstMinimumBins, a.ScallopLossdB)
	}

	return tw.Flush()
}

func printResponse(w io.Writer, types []window.Type, o options) error {
	for _, t := range types {
		mag, err := window.MagnitudeResponse(window.Generate(t, o.size, o.windowOptions(t)...), o.fftSize)
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}

		ref := mag[0]
		if ref == 0 {
			ref = 1
		}

		fmt.Fprintf(w, "# %s\n", label(t, o))

		bins := float64(2*(len(mag)-1)) / float64(o.size)
		for k, m := range mag {
			fmt.Fprintf(w, "%.4f\t%.2f\n", float64(k)/bins, gain.ToDB(m/ref))
		}
	}

	return nil
}
