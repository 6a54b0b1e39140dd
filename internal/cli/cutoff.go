// Package cli implements the cutoff command line calculator.
package cli

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RMahshie/cutoff/pkg/quantity"
	"github.com/RMahshie/cutoff/pkg/rcfilter"
)

const cutoffLong = `Calculate the missing value of a first-order RC low-pass filter.

Give any two of resistance (ohm), capacitance (F) and cutoff frequency
(Hz) and the third is solved for:

    f = 1 / (2 pi R C)

Values take an optional metric prefix between number and unit: p, n, u,
m, k and M, as in 200ko, 0.1uF or 20kHz. Prefixes are case-sensitive
(m is milli, M is mega); units are not.`

const cutoffExample = `  cutoff 200ko 20kHz
  cutoff 4.7ko 33nF
  cutoff --curve 1ko 100nF`

// The --curve table spans this many decades either side of the cutoff.
const (
	curveDecades = 2
	curvePoints  = 21
)

// CutoffOptions holds the state for a single calculator invocation.
type CutoffOptions struct {
	Args    []string
	Verbose bool
	Curve   bool

	quantities []quantity.Quantity

	Out    io.Writer
	ErrOut io.Writer
}

// NewCmdCutoff builds the calculator command. Supplying fewer or more
// than two values prints usage and exits cleanly; bad values are errors.
func NewCmdCutoff(out, errOut io.Writer) *cobra.Command {
	o := &CutoffOptions{Out: out, ErrOut: errOut}

	cmd := &cobra.Command{
		Use:          "cutoff <value> <value>",
		Short:        "RC low-pass filter calculator",
		Long:         cutoffLong,
		Example:      cutoffExample,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return cmd.Usage()
			}
			if err := o.Complete(args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "log parse and solve intermediates")
	flags.BoolVar(&o.Curve, "curve", false, "print the filter's frequency response table")

	return cmd
}

// Complete captures the positional arguments and applies flag side effects.
func (o *CutoffOptions) Complete(args []string) error {
	o.Args = args
	if o.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return nil
}

// Validate parses the arguments. Magnitudes are carried at three
// significant figures from here on.
func (o *CutoffOptions) Validate() error {
	o.quantities = o.quantities[:0]
	for _, arg := range o.Args {
		q, err := quantity.Parse(arg)
		if err != nil {
			return err
		}
		q.Magnitude = quantity.RoundSig(q.Magnitude, 3)
		log.Debug().
			Str("input", arg).
			Str("kind", q.Kind.String()).
			Float64("magnitude", q.Magnitude).
			Msg("Parsed argument")
		o.quantities = append(o.quantities, q)
	}
	return nil
}

// Run solves the filter and prints the answer sentence, plus the
// response table when requested.
func (o *CutoffOptions) Run() error {
	sol, err := rcfilter.Solve(o.quantities[0], o.quantities[1])
	if err != nil {
		return err
	}
	log.Debug().
		Str("solved", sol.Kind.String()).
		Float64("frequency_hz", sol.Frequency).
		Float64("resistance_ohms", sol.Resistance).
		Float64("capacitance_farads", sol.Capacitance).
		Msg("Solved filter")

	fmt.Fprintln(o.Out, sol.Sentence())

	if o.Curve {
		return o.printCurve(sol)
	}
	return nil
}

// printCurve renders the frequency response around the cutoff, two
// decades either side, as an aligned table.
func (o *CutoffOptions) printCurve(sol rcfilter.Solution) error {
	span := math.Pow10(curveDecades)
	points := rcfilter.ResponseCurve(sol.Resistance, sol.Capacitance,
		sol.Frequency/span, sol.Frequency*span, curvePoints)

	tw := tabwriter.NewWriter(o.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency\tGain [dB]\tPhase [deg]\n")
	for _, p := range points {
		fmt.Fprintf(tw, "%sHz\t%.2f\t%.2f\n",
			quantity.Format(quantity.RoundSig(p.Frequency, 3)), p.Magnitude, p.Phase)
	}
	return tw.Flush()
}
