package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leibniz-ad/leibniz/internal/op"
)

// OpInfo is one catalogue row in the ops listing.
type OpInfo struct {
	Opcode      int    `json:"opcode"`
	Name        string `json:"name"`
	Arity       int    `json:"arity"`
	Commutative bool   `json:"commutative"`
	ZeroBoth    bool   `json:"zero_both"`
	ZeroLeft    bool   `json:"zero_left"`
	ZeroRight   bool   `json:"zero_right"`
	Render      string `json:"render"`
}

// NewOpsCommand creates the ops command: dump the operation catalogue.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the operation catalogue",
		Long: `List every operation with its opcode, arity, algebraic flags and a
render sample. Opcodes are stable: they are the wire format for serialized
graphs and generated code.

Examples:
  leibniz ops
  leibniz ops --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(rootOpts, cmd)
		},
	}

	return cmd
}

func runOps(opts *RootOptions, cmd *cobra.Command) error {
	infos := make([]OpInfo, 0, int(op.Count))
	for k := op.Add; k < op.Count; k++ {
		d := op.Describe(k)
		infos = append(infos, OpInfo{
			Opcode:      int(k),
			Name:        k.String(),
			Arity:       d.Arity,
			Commutative: d.Commutative,
			ZeroBoth:    d.ZeroBoth,
			ZeroLeft:    d.ZeroLeft,
			ZeroRight:   d.ZeroRight,
			Render:      op.Render(k, "x", "y"),
		})
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	}

	fmt.Fprintf(w, "%6s  %-10s  %5s  %-5s  %-5s %-5s %-5s  %s\n",
		"OPCODE", "NAME", "ARITY", "COMM", "Z00", "Z0Y", "ZX0", "RENDER")
	for _, info := range infos {
		fmt.Fprintf(w, "%6d  %-10s  %5d  %-5s  %-5s %-5s %-5s  %s\n",
			info.Opcode, info.Name, info.Arity,
			yesNo(info.Commutative), yesNo(info.ZeroBoth),
			yesNo(info.ZeroLeft), yesNo(info.ZeroRight),
			info.Render)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
