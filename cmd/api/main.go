package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/xiebiao/library/docs"
	"github.com/xiebiao/library/internal/bootstrap"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/logger"
)

// @title        图书馆管理API
// @version      1.0
// @description  会员注册、图书登记、借书与还书
// @BasePath     /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志和链路追踪
	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}

	shutdownTracing, err := bootstrap.SetupTracing(cfg)
	if err != nil {
		log.Fatalf("初始化链路追踪失败: %v", err)
	}
	defer shutdownTracing()

	// 3. 依赖注入(wire_gen.go)
	app, cleanup, err := bootstrap.InitializeApp(cfg, appLogger)
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	// 4. 启动服务,Ctrl+C优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil {
		appLogger.Error("服务退出", "error", err)
		cleanup()
		shutdownTracing()
		os.Exit(1)
	}
}
