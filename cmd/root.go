package cmd

import (
	"context"
	"os"
	"os/signal"

	charmlog "github.com/charmbracelet/log"
	"github.com/jsphweid/midirect/composer"
	"github.com/jsphweid/midirect/config"
	"github.com/jsphweid/midirect/db"
	"github.com/jsphweid/midirect/model"
	"github.com/jsphweid/midirect/rect"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	layoutFlag string
	levelFlag  string

	cfg    *config.Config
	logger *charmlog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "midirect",
	Short:         "MIDI -> CSV",
	Long:          `Turns MIDI performances into one-row-per-event CSV files for analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "midirect.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&layoutFlag, "layout", "", "row layout, wide or narrow")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "debug, info, warn or error")
}

func setup() error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if layoutFlag != "" {
		c.Layout = model.Layout(layoutFlag)
	}
	if levelFlag != "" {
		c.LogLevel = levelFlag
	}
	if err := c.Validate(); err != nil {
		return err
	}
	level, err := charmlog.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}

	cfg = c
	logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return nil
}

func rectOptions(c *config.Config) rect.Options {
	return rect.Options{
		Layout:        c.Layout,
		IntervalNames: c.IntervalFormat == config.IntervalName,
	}
}

func withLogger(ctx context.Context) context.Context {
	return context.WithValue(ctx, charmlog.ContextKey, logger)
}

func composerSource(c *config.Config) (composer.Source, error) {
	if c.Composers.Table == "" {
		return composer.Default, nil
	}
	return db.Open(c.Composers.Table, c.Composers.Endpoint, c.Composers.Region)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cobra.CheckErr(err)
}
