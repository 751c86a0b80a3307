// Package grpcserver 提供gRPC健康检查服务(grpc.health.v1.Health)
package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName 健康检查中的服务名,空字符串代表整体状态
const ServiceName = "library"

// DefaultProbeInterval 数据库探测间隔
const DefaultProbeInterval = 10 * time.Second

// Pinger 依赖探测(*sql.DB满足该接口)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server gRPC健康检查服务器
// 状态跟随数据库探测结果:可达为SERVING,否则NOT_SERVING
type Server struct {
	server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
}

// New 创建服务器并注册health和reflection服务
func New(pinger Pinger, interval time.Duration) *Server {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}

	server := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	// grpcurl调试用
	reflection.Register(server)

	return &Server{
		server:   server,
		health:   hs,
		pinger:   pinger,
		interval: interval,
	}
}

// ListenAndServe 监听端口并阻塞,ctx取消后优雅关闭
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("监听gRPC端口失败: %w", err)
	}
	return s.Serve(ctx, lis)
}

// Serve 在给定listener上提供服务
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.Probe(ctx)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.health.Shutdown()
				s.server.GracefulStop()
				return
			case <-done:
				return
			case <-ticker.C:
				s.Probe(ctx)
			}
		}
	}()

	slog.Info("🚀 gRPC健康检查服务启动", slog.String("addr", lis.Addr().String()))
	err := s.server.Serve(lis)
	close(done)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Probe 探测一次数据库并更新健康状态
func (s *Server) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	pingCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()
	if err := s.pinger.PingContext(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		slog.Warn("数据库探测失败", slog.Any("error", err))
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Stop 立即停止
func (s *Server) Stop() {
	s.server.Stop()
}
