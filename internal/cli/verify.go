package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/genplan/internal/engine"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every declared output exists",
	Long: `Plan the generator invocation and check that every output it declares exists.

Use after the generator has run to catch catalogs that drifted from what the
generator actually writes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := setup()
		if err != nil {
			return err
		}

		result, err := eng.Verify(context.Background(), &engine.VerifyRequest{PlanRequest: planRequest(cfg)})
		if result == nil {
			return err
		}

		if jsonOutput {
			if jerr := outputJSON(cmd.OutOrStdout(), result); jerr != nil {
				return jerr
			}
			return err
		}

		if result.OK() {
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("All %s present", PrintCount(result.Checked, "declared output", "declared outputs")))
			return nil
		}
		printMissing(cmd.ErrOrStderr(), result)
		return err
	},
}

func printMissing(w io.Writer, result *engine.VerifyResult) {
	PrintError(w, fmt.Sprintf("%d of %d declared outputs missing:", len(result.Missing), result.Checked))
	PrintList(w, result.Missing, 1)
}
