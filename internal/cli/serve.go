package cli

import (
	"github.com/spf13/cobra"

	"github.com/xiebiao/library/internal/bootstrap"
	"github.com/xiebiao/library/internal/infrastructure/logger"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务(grpc.enabled时同时启动gRPC健康检查)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log, err := logger.NewLogger(cfg)
			if err != nil {
				return err
			}

			shutdownTracing, err := bootstrap.SetupTracing(cfg)
			if err != nil {
				return err
			}
			defer shutdownTracing()

			app, cleanup, err := bootstrap.InitializeApp(cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			return app.Serve(cmd.Context())
		},
	}
}
