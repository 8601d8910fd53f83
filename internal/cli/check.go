package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leibniz-ad/leibniz/internal/harness"
)

// SuiteSummary holds the outcome of one conformance suite.
type SuiteSummary struct {
	Name     string   `json:"name"`
	Pass     bool     `json:"pass"`
	Cases    int      `json:"cases"`
	Failures []string `json:"failures,omitempty"`
}

// CheckResult is the overall result of a check run.
type CheckResult struct {
	Suites []SuiteSummary `json:"suites"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
}

// NewCheckCommand creates the check command: run conformance test-vector
// suites against the engine.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <suite.yaml>...",
		Short: "Run conformance test-vector suites",
		Long: `Run YAML test-vector suites through the dispatch tables and compare
the results against the stated expectations. Cases inside a suite run
concurrently.

Exit codes:
  0 - All suites passed
  1 - One or more cases failed
  2 - Command error (unreadable or malformed suite files)

Examples:
  leibniz check vectors/basic.yaml
  leibniz check vectors/*.yaml --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command, paths []string) error {
	w := cmd.OutOrStdout()

	result := CheckResult{
		Suites: make([]SuiteSummary, 0, len(paths)),
		Total:  len(paths),
	}

	for _, path := range paths {
		suite, err := harness.LoadSuite(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load suite", err)
		}

		report := harness.Run(suite)
		summary := summarize(report)
		result.Suites = append(result.Suites, summary)
		if summary.Pass {
			result.Passed++
		} else {
			result.Failed++
		}

		if opts.Format != "json" {
			printSuiteText(w, opts, report, summary)
		}
	}

	if opts.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Check summary: %d passed, %d failed, %d total\n",
			result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", result.Failed))
	}
	return nil
}

func summarize(report *harness.Report) SuiteSummary {
	summary := SuiteSummary{
		Name:  report.Suite,
		Pass:  report.Passed(),
		Cases: len(report.Results),
	}
	for i := range report.Results {
		r := &report.Results[i]
		for _, m := range r.Mismatches {
			summary.Failures = append(summary.Failures,
				fmt.Sprintf("[%d] %s(%g, %g): %s", i, r.Op, r.X, r.Y, m))
		}
	}
	return summary
}

func printSuiteText(w io.Writer, opts *RootOptions, report *harness.Report, summary SuiteSummary) {
	if summary.Pass {
		fmt.Fprintf(w, "✓ %s (%d cases)\n", summary.Name, summary.Cases)
	} else {
		fmt.Fprintf(w, "✗ %s (%d of %d cases failed)\n", summary.Name, report.Failed, summary.Cases)
		for _, failure := range summary.Failures {
			fmt.Fprintf(w, "  %s\n", failure)
		}
	}

	if opts.Verbose {
		for i := range report.Results {
			r := &report.Results[i]
			fmt.Fprintf(w, "  [%d] %s(%g, %g) -> f=%g dx=%g dy=%g\n",
				i, r.Op, r.X, r.Y, r.F, r.DX, r.DY)
		}
	}
}
