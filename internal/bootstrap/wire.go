//go:build wireinject
// +build wireinject

// wire注入配置,修改后执行 `wire gen ./internal/bootstrap` 重新生成wire_gen.go

package bootstrap

import (
	"log/slog"

	"github.com/google/wire"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/catalog"
	applending "github.com/xiebiao/library/internal/application/lending"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideOverviewCache,
	providePublisher,
	provideBreaker,
	provideNotifier,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	gormstore.NewMemberRepository,
	gormstore.NewBookRepository,
	gormstore.NewIssueRepository,
	gormstore.NewSequenceRepository,
	gormstore.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	member.NewCodeGenerator,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appmember.NewRegisterMemberUseCase,
	appbook.NewRegisterBookUseCase,
	applending.NewIssueBookUseCase,
	applending.NewReturnBookUseCase,
	catalog.NewListAllUseCase,
	catalog.NewLookupUseCase,
	catalog.NewCirculationUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewLibraryHandler,
	handler.NewMemberHandler,
	handler.NewBookHandler,
	handler.NewIssueHandler,
	wire.Struct(new(router.Handlers), "*"),
	provideEngine,
	provideHTTPServer,
	provideHealthServer,
)

// InitializeApp 组装应用
func InitializeApp(cfg *config.Config, logger *slog.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
