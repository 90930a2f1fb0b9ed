package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/genplan/internal/planner"
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [builtin|general|combined]",
	Short:     "List the generator output catalogs",
	Long:      `Without arguments, print the size of each output catalog. With a catalog name, list its entries.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"builtin", "general", "combined"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		catalogs := map[string][]string{
			"builtin":  planner.BuiltinNames(),
			"general":  planner.GeneralNames(),
			"combined": planner.CombinedNames(),
		}

		if len(args) == 1 {
			names := catalogs[args[0]]
			if jsonOutput {
				return outputJSON(w, names)
			}
			for _, n := range names {
				_, _ = fmt.Fprintln(w, n)
			}
			return nil
		}

		if jsonOutput {
			counts := make(map[string]int, len(catalogs))
			for k, v := range catalogs {
				counts[k] = len(v)
			}
			return outputJSON(w, counts)
		}

		PrintSection(w, "Output catalogs")
		PrintLabelValue(w, "builtin ("+planner.BuiltinDir+"/)", PrintCount(len(catalogs["builtin"]), "file", "files"))
		PrintLabelValue(w, "general ("+planner.GeneralDir+"/)", PrintCount(len(catalogs["general"]), "file", "files"))
		PrintLabelValue(w, "combined", PrintCount(len(catalogs["combined"]), "file", "files"))
		return nil
	},
}
