package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jingkaihe/gha-docgen/pkg/docgen"
	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/jingkaihe/gha-docgen/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Regenerate documentation whenever the action file changes",
	Long: `Runs a generation pass, then watches the action metadata file and runs
again every time it changes. Failed runs are reported and watching continues.
Press Ctrl+C to stop.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := getGenerateConfig(viper.GetViper(), args)
		if err != nil {
			return err
		}
		// Watch mode always writes.
		config.Check = false

		debounce, err := cmd.Flags().GetDuration("debounce")
		if err != nil {
			return errors.WithStack(err)
		}
		if debounce < 0 {
			return errors.Errorf("debounce cannot be negative: %s", debounce)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, config, debounce)
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", docgen.DefaultDebounce, "How long to wait for the action file to settle before regenerating")
}

func runWatch(ctx context.Context, config *GenerateConfig, debounce time.Duration) error {
	r, err := docgen.NewRunner(config.Options("."))
	if err != nil {
		return err
	}

	presenter.Info("Watching for action file changes. Press Ctrl+C to stop.")
	err = docgen.Watch(ctx, r, debounce, func(result *docgen.Result, err error) {
		if result != nil {
			reportResult(result, config)
		}
		if err != nil {
			presenter.Error(err, "")
			logger.G(ctx).WithError(err).Debug("generation failed")
		}
	})
	if err != nil {
		return err
	}

	presenter.Info("Stopped watching.")
	return nil
}
