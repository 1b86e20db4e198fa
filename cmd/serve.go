package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling api over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts.config)
		},
	}
	serveCmd.Flags().Int("port", 9095, "Port to listen on")
	bindFlags(opts.v, serveCmd.Flags(), map[string]string{"port": config.KeyPort})
	return serveCmd
}

func serve(ctx context.Context, cfg *config.SchedulerConfig) error {
	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))

	go func() {
		<-ctx.Done()
		logrus.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("shutdown: %v", err)
		}
	}()

	logrus.Infof("listening on :%d (round-robin quantum %d)", cfg.Port, cfg.RoundRobinTimeQuantum)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
