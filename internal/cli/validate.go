package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/plan"
)

var validateFenceTag string

var validateCmd = &cobra.Command{
	Use:   "validate <plan-file>",
	Short: "Validate a plan file against the plan schema",
	Long: `Reads a plan file (JSON, or markdown carrying a tagged plan fence) and
checks it against the plan schema. Prints "JSON passed validation" and exits 0
on success; prints the parse or schema error and exits 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0], validateFenceTag, cmd.OutOrStdout())
	},
}

// runValidate holds the validation flow behind substitutable output, so the
// whole path is exercisable in tests without a real process exit.
func runValidate(path, fenceTag string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plan file: %w", err)
	}

	if _, err := plan.Parse(path, data, fenceTag); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "JSON passed validation")
	return nil
}

func init() {
	validateCmd.Flags().StringVar(&validateFenceTag, "fence-tag", plan.DefaultFenceTag,
		"fence tag marking an embedded plan in markdown files")
	rootCmd.AddCommand(validateCmd)
}
