//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// Wire在编译期生成依赖组装代码,运行 `wire gen ./cmd/web` 生成wire_gen.go。
// main.go中的手动组装与这里的Provider声明保持一致。
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/xiebiao/mylibrary/internal/application/book"
	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/internal/infrastructure/config"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/mylibrary/internal/interface/http/handler"
	"github.com/xiebiao/mylibrary/internal/interface/http/middleware"
)

// infrastructureSet 基础设施层:配置、数据库、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
)

// domainSet 领域层
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层用例
// 列表用例和缓存需要从Config提取参数,走自定义Provider
var applicationSet = wire.NewSet(
	provideBookCache,
	provideFlashStore,
	provideListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewWelcomeHandler,
)

// provideBookCache 从配置提取TTL创建详情缓存
func provideBookCache(client *goredis.Client, cfg *config.Config) appbook.DetailCache {
	return redis.NewBookCache(client, cfg.Catalog.CacheTTL)
}

// provideFlashStore 从配置提取TTL创建提示消息存储
func provideFlashStore(client *goredis.Client, cfg *config.Config) handler.FlashStore {
	return redis.NewFlashStore(client, cfg.Catalog.NoticeTTL)
}

// provideListBooksUseCase 从配置提取页大小创建列表用例
func provideListBooksUseCase(bookService book.Service, cfg *config.Config) *appbook.ListBooksUseCase {
	return appbook.NewListBooksUseCase(bookService, cfg.Catalog.PageSize)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	welcomeHandler *handler.WelcomeHandler,
	bookHandler *handler.BookHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())
	r.LoadHTMLGlob("web/templates/*.html")

	registerRoutes(r, welcomeHandler, bookHandler)
	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
