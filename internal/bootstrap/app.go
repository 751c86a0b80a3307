// Package bootstrap 组装应用依赖(wire),供HTTP服务和命令行共用
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/catalog"
	applending "github.com/xiebiao/library/internal/application/lending"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/grpcserver"
)

// App 组装完成的应用
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	DB         *gorm.DB
	HTTPServer *http.Server
	GRPCServer *grpcserver.Server // grpc.enabled=false时为nil

	RegisterMember *appmember.RegisterMemberUseCase
	RegisterBook   *appbook.RegisterBookUseCase
	IssueBook      *applending.IssueBookUseCase
	ReturnBook     *applending.ReturnBookUseCase
	ListAll        *catalog.ListAllUseCase
	Lookup         *catalog.LookupUseCase
	Circulation    *catalog.CirculationUseCase
}

// Serve 启动HTTP(和gRPC健康检查)服务,阻塞到ctx取消后优雅关闭
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		a.Logger.Info("🚀 服务启动成功",
			slog.String("addr", a.HTTPServer.Addr),
			slog.String("mode", a.Config.Server.Mode),
		)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	grpcCtx, cancelGRPC := context.WithCancel(ctx)
	defer cancelGRPC()
	if a.GRPCServer != nil {
		go func() {
			if err := a.GRPCServer.ListenAndServe(grpcCtx, a.Config.GRPC.Port); err != nil {
				errCh <- err
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("📴 收到关闭信号,开始优雅关闭...")
	case serveErr = <-errCh:
		a.Logger.Error("服务异常退出", slog.Any("error", serveErr))
	}
	cancelGRPC()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, err)
	}

	a.Logger.Info("✅ 服务已安全关闭")
	return serveErr
}
