package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cpu-scheduler/config"
)

// settings shared by every subcommand
type rootOptions struct {
	v          *viper.Viper
	configPath string
	logLevel   string
	config     *config.SchedulerConfig
}

// NewRootCommand builds the schedsim command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "schedsim",
		Short:         "Discrete-event simulator for CPU scheduling algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	bindFlags(opts.v, rootCmd.PersistentFlags(), map[string]string{"log": config.KeyLogLevel})

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newPresetsCommand())
	return rootCmd
}

func (o *rootOptions) load() error {
	if err := config.ReadFile(o.v, o.configPath); err != nil {
		return err
	}
	cfg, err := config.FromViper(o.v)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	o.config = cfg
	return nil
}

// bindFlags binds each flag name to its config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			logrus.Fatalf("binding flag %s: %v", name, err)
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
