package grpcserver

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct {
	failing atomic.Bool
}

func (p *fakePinger) PingContext(context.Context) error {
	if p.failing.Load() {
		return errors.New("database is down")
	}
	return nil
}

func TestServer_Health(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pinger := &fakePinger{}
	srv := New(pinger, time.Hour)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx, lis) }()

	conn, err := grpc.Dial(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	check := func(t *testing.T) healthpb.HealthCheckResponse_ServingStatus {
		t.Helper()
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	t.Run("数据库可达", func(t *testing.T) {
		assert.Eventually(t, func() bool {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
			return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("数据库不可达", func(t *testing.T) {
		pinger.failing.Store(true)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, srv.Probe(ctx))
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t))
	})

	t.Run("恢复", func(t *testing.T) {
		pinger.failing.Store(false)
		srv.Probe(ctx)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t))
	})

	t.Run("ctx取消后关闭", func(t *testing.T) {
		cancel()
		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("服务器未关闭")
		}
	})
}
