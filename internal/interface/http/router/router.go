// Package router 注册HTTP路由
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Library *handler.LibraryHandler
	Member  *handler.MemberHandler
	Book    *handler.BookHandler
	Issue   *handler.IssueHandler
}

// New 创建并配置Gin引擎
func New(cfg *config.Config, logger *slog.Logger, h Handlers) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// http://localhost:8080/swagger/index.html
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		library := v1.Group("/library")
		{
			library.GET("", h.Library.Overview)
			library.GET("/circulation", h.Library.Circulation)
		}

		members := v1.Group("/members")
		{
			members.GET("", h.Member.List)
			members.POST("", h.Member.Register)
			members.GET("/:code", h.Member.Get)
		}

		books := v1.Group("/books")
		{
			books.GET("", h.Book.List)
			books.POST("", h.Book.Register)
			books.GET("/:id", h.Book.Get)
		}

		issues := v1.Group("/issues")
		{
			issues.GET("", h.Issue.List)
			issues.POST("", h.Issue.Issue)
			issues.GET("/:id", h.Issue.Get)
			issues.POST("/:id/return", h.Issue.Return)
		}
	}

	return r
}
