// Package cli librarian命令行
package cli

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/xiebiao/library/internal/bootstrap"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/logger"
)

// options 全局参数
type options struct {
	configPath string
	jsonOutput bool
}

// NewRootCommand 创建根命令
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "librarian",
		Short:         "图书馆管理命令行",
		Long:          "管理会员、图书和借阅记录,或启动HTTP服务",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "配置文件路径(默认查找./config/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "以JSON格式输出")

	root.AddCommand(
		newServeCommand(opts),
		newMemberCommand(opts),
		newBookCommand(opts),
		newIssueCommand(opts),
		newReturnCommand(opts),
		newListCommand(opts),
		newCirculationCommand(opts),
		newEventsCommand(opts),
	)

	return root
}

// Execute 执行命令行
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *options) loadConfig() (*config.Config, error) {
	return config.LoadFile(o.configPath)
}

// withApp 组装应用后执行fn,日志写到stderr
func (o *options) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	// 单次命令不打印SQL,也不启动gRPC
	cfg.Server.Mode = gin.ReleaseMode
	cfg.GRPC.Enabled = false

	log := logger.New(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(log)

	app, cleanup, err := bootstrap.InitializeApp(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(cmd.Context(), app)
}

func (o *options) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), json: o.jsonOutput}
}
