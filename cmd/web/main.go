package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appbook "github.com/xiebiao/mylibrary/internal/application/book"
	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/internal/infrastructure/config"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/mylibrary/internal/interface/http/handler"
	"github.com/xiebiao/mylibrary/internal/interface/http/middleware"
	"github.com/xiebiao/mylibrary/pkg/logger"
	"github.com/xiebiao/mylibrary/pkg/metrics"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire注入器,用 `wire gen ./cmd/web` 生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志和指标
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	metrics.InitMetrics()

	logger.Info("配置加载成功", map[string]interface{}{
		"port":  cfg.Server.Port,
		"mode":  cfg.Server.Mode,
		"db":    fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName),
		"redis": cfg.Redis.Addr(),
	})

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	bookCache := redis.NewBookCache(redisClient, cfg.Catalog.CacheTTL)
	flashStore := redis.NewFlashStore(redisClient, cfg.Catalog.NoticeTTL)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	listBooksUC := appbook.NewListBooksUseCase(bookService, cfg.Catalog.PageSize)
	getBookUC := appbook.NewGetBookUseCase(bookService, bookCache)
	createBookUC := appbook.NewCreateBookUseCase(bookService)
	updateBookUC := appbook.NewUpdateBookUseCase(bookService, bookCache)
	deleteBookUC := appbook.NewDeleteBookUseCase(bookService, bookCache)

	// 接口层
	bookHandler := handler.NewBookHandler(listBooksUC, getBookUC, createBookUC, updateBookUC, deleteBookUC, flashStore)
	welcomeHandler := handler.NewWelcomeHandler()

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())
	r.LoadHTMLGlob("web/templates/*.html")

	// 7. 注册路由
	registerRoutes(r, welcomeHandler, bookHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("服务启动", map[string]interface{}{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 页面路由保持Django风格的尾斜杠
func registerRoutes(r *gin.Engine, welcomeHandler *handler.WelcomeHandler, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 欢迎页
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/welcome/")
	})
	r.GET("/welcome/", welcomeHandler.Welcome)

	// 图书目录
	r.GET("/books/", bookHandler.ListBooks)
	r.GET("/books/:id/", bookHandler.GetBook)
	r.GET("/create_book/", bookHandler.CreateBookPage)
	r.POST("/create_book/", bookHandler.CreateBook)
	r.GET("/update_book/:id/", bookHandler.UpdateBookPage)
	r.POST("/update_book/:id/", bookHandler.UpdateBook)
	r.GET("/delete_book/:id/", bookHandler.DeleteBookPage)
	r.POST("/delete_book/:id/", bookHandler.DeleteBook)
}
