package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/registry"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// EvalResult is the payload of a single evaluation.
type EvalResult struct {
	Op string  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y,omitempty"`
	F  float64 `json:"f"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// NewEvalCommand creates the eval command: apply one operation to concrete
// operands and report the value with both partial derivatives.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <x> [y]",
		Short: "Evaluate one operation with its partial derivatives",
		Long: `Evaluate one operation on concrete operands and print the forward value
together with df/dx and df/dy. Operation names match the catalogue
case-insensitively; arity-1 operations take a single operand.

Exit codes:
  0 - Evaluation completed
  2 - Command error (unknown operation, malformed operands, wrong arity)

Examples:
  leibniz eval add 2 3
  leibniz eval sin 0.5
  leibniz eval pow 2 3 --format json`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, cmd *cobra.Command, args []string) error {
	kind, err := op.ParseKind(args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, "bad operation", err)
	}

	arity := op.Describe(kind).Arity
	if want := arity + 1; len(args) != want {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("%s takes %d operand(s), got %d", kind, arity, len(args)-1))
	}

	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad operand x", err)
	}
	var y float64
	if arity == 2 {
		y, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return WrapExitError(ExitCommandError, "bad operand y", err)
		}
	}

	f, dx, dy := registry.EvaluatePartials(kind, scalar.Float64(x), scalar.Float64(y))
	result := EvalResult{
		Op: kind.String(),
		X:  x,
		Y:  y,
		F:  float64(f),
		DX: float64(dx),
		DY: float64(dy),
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if arity == 2 {
		fmt.Fprintf(w, "%s\n", registry.For[scalar.Float64]().Render(kind, args[1], args[2]))
		fmt.Fprintf(w, "f  = %g\ndx = %g\ndy = %g\n", result.F, result.DX, result.DY)
	} else {
		fmt.Fprintf(w, "%s\n", registry.For[scalar.Float64]().Render(kind, args[1], ""))
		fmt.Fprintf(w, "f  = %g\ndx = %g\n", result.F, result.DX)
	}
	return nil
}
