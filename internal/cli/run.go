package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/genplan/internal/engine"
)

var (
	runDryRun bool
	runForce  bool
	runVerify bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the generator unless it is up to date",
	Long: `Plan the generator invocation and run it.

Incremental steps are skipped when the manifest, the command and every declared
output match the last successful run. Prebuild steps always run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		req := &engine.RunRequest{
			PlanRequest: planRequest(cfg),
			DryRun:      runDryRun,
			Force:       runForce,
			Verify:      runVerify,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		}

		result, err := eng.Run(ctx, req)
		if result != nil && result.Verify != nil && !result.Verify.OK() {
			printMissing(cmd.ErrOrStderr(), result.Verify)
		}
		if err != nil {
			return err
		}

		return writeResult(cmd.OutOrStdout(), "text", result, func(w io.Writer) error {
			printRun(w, result, runDryRun)
			return nil
		})
	},
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Report what would happen without running the generator")
	runCmd.Flags().BoolVar(&runForce, "force", false, "Run even if the step is up to date")
	runCmd.Flags().BoolVar(&runVerify, "verify", false, "Check declared outputs after the run")
}

func printRun(w io.Writer, result *engine.RunResult, dryRun bool) {
	outputs := PrintCount(len(result.Command.Outputs), "output", "outputs")
	switch {
	case result.UpToDate:
		PrintSuccess(w, fmt.Sprintf("Up to date (%s)", outputs))
	case result.Ran:
		PrintSuccess(w, fmt.Sprintf("Generated %s: %s", outputs, result.Reason))
	case dryRun:
		PrintWarning(w, fmt.Sprintf("Would run generator: %s", result.Reason))
	}
}
