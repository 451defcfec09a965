package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for planweaver.
var rootCmd = &cobra.Command{
	Use:   "planweaver",
	Short: "Validate declarative test plans and generate Ginkgo E2E tests",
	Long: `PlanWeaver reads declarative JSON test plans (standalone or embedded
in markdown docs as a tagged fence) and generates executable Ginkgo/Gomega
E2E test files that drive a browser through the webdriver package.

Generation is driven by a YAML configuration file (planweaver.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "planweaver.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "translate plans but don't write files")

	log = logrus.New()
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
