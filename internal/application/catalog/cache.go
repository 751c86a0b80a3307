package catalog

import "context"

// OverviewCache 总览缓存
// Load未命中返回(false, nil)
type OverviewCache interface {
	Load(ctx context.Context, dest any) (bool, error)
	Store(ctx context.Context, v any) error
	Invalidate(ctx context.Context) error
}

// NopCache 不缓存(redis.enabled=false时使用)
type NopCache struct{}

func (NopCache) Load(context.Context, any) (bool, error) { return false, nil }
func (NopCache) Store(context.Context, any) error        { return nil }
func (NopCache) Invalidate(context.Context) error        { return nil }
