package main

import (
	"os"
	"strings"

	"github.com/jingkaihe/gha-docgen/pkg/docgen"
	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/jingkaihe/gha-docgen/pkg/presenter"
	"github.com/jingkaihe/gha-docgen/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("GHA_DOCGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("style", string(render.DefaultStyle))
	viper.SetDefault("concurrency", docgen.DefaultConcurrency)
	viper.SetDefault("log_format", "fmt")

	// Config file support
	viper.SetConfigName(".gha-docgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "gha-docgen [files...]",
	Short: "Generate documentation for GitHub Actions",
	Long: `gha-docgen renders the description, inputs and outputs of a GitHub Action
metadata file (action.yml or action.yaml) and writes them between marker
comments in markdown documents:

  <!-- gha-description-start --><!-- gha-description-end -->
  <!-- gha-inputs-start --><!-- gha-inputs-end -->
  <!-- gha-outputs-start --><!-- gha-outputs-end -->

Files default to README.md. Glob patterns such as 'docs/**/*.md' are expanded.`,
	Example: `  gha-docgen
  gha-docgen --action ./path/to/action.yml README.md docs/usage.md
  gha-docgen --style table
  gha-docgen --check --diff 'docs/**/*.md'`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := getGenerateConfig(viper.GetViper(), args)
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), config)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("action", "a", "", "Path to the action metadata file (default: action.yml, then action.yaml)")
	rootCmd.PersistentFlags().StringP("style", "s", string(render.DefaultStyle), `Output style: "section:h1" through "section:h6", or "table"`)
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Glob patterns of documents to skip (repeatable)")
	rootCmd.PersistentFlags().Int("concurrency", docgen.DefaultConcurrency, "Number of documents processed in parallel")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print errors and diffs")

	rootCmd.Flags().Bool("check", false, "Do not write; fail if any document is out of date")
	rootCmd.Flags().Bool("diff", false, "Print a unified diff of every changed document")

	// Bind flags to viper, "log-format" becomes "log_format"
	bindFlags(rootCmd.PersistentFlags())
	bindFlags(rootCmd.Flags())

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// setupOutput configures logging and the presenter from the resolved
// configuration before any command runs.
func setupOutput(_ *cobra.Command, _ []string) error {
	level := "info"
	if viper.GetBool("debug") {
		level = "debug"
	}
	if err := logger.Configure(logger.Options{
		Level:  level,
		Format: viper.GetString("log_format"),
	}); err != nil {
		return err
	}

	presenter.SetQuiet(viper.GetBool("quiet"))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
