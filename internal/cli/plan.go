package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/genplan/internal/engine"
)

var (
	planFormat      string
	planListOutputs bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the planned generator command",
	Long: `Plan the generator invocation for the target platform and print it.

Argument-limited platforms get a prebuild step in combined mode; all others get
an incremental step declaring every generated file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := setup()
		if err != nil {
			return err
		}

		req := planRequest(cfg)
		result, err := eng.Plan(context.Background(), &req)
		if err != nil {
			return err
		}

		return writeResult(cmd.OutOrStdout(), planFormat, result, func(w io.Writer) error {
			printPlan(w, result, planListOutputs)
			return nil
		})
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "Output format: text, json, yaml")
	planCmd.Flags().BoolVar(&planListOutputs, "outputs", false, "List every declared output")
}

// writeResult writes v in the requested format; --json wins over --format.
func writeResult(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	if jsonOutput {
		format = "json"
	}
	switch strings.ToLower(format) {
	case "json":
		return outputJSON(w, v)
	case "yaml", "yml":
		return outputYAML(w, v)
	case "text", "":
		return text(w)
	default:
		return errors.Newf("unknown output format %q", format)
	}
}

// printPlan prints a human-readable plan summary.
func printPlan(w io.Writer, result *engine.PlanResult, listOutputs bool) {
	c := result.Command

	PrintSection(w, c.DisplayName)
	PrintLabelValue(w, "Platform", string(result.Platform))
	PrintLabelValue(w, "Mode", string(c.Mode))
	PrintLabelValue(w, "Executable", c.Executable)
	PrintLabelValue(w, "Arguments", strings.Join(c.Arguments, " "))
	PrintLabelValue(w, "Output dir", c.OutputDir)
	PrintLabelValue(w, "Inputs", PrintCount(len(c.Inputs), "file", "files"))
	PrintLabelValue(w, "Outputs", PrintCount(len(c.Outputs), "file", "files"))

	if c.IsPrebuild() {
		_, _ = fmt.Fprintln(w)
		PrintWarning(w, "prebuild step: runs on every build, no incremental tracking")
	}

	if listOutputs {
		_, _ = fmt.Fprintln(w)
		PrintList(w, c.Outputs, 1)
	}
}
