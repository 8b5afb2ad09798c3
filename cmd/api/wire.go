//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire是编译期依赖注入工具:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/ReallyKrishna/Book-Review-API/internal/application/book"
	appreview "github.com/ReallyKrishna/Book-Review-API/internal/application/review"
	appuser "github.com/ReallyKrishna/Book-Review-API/internal/application/user"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/user"
	"github.com/ReallyKrishna/Book-Review-API/internal/infrastructure/config"
	"github.com/ReallyKrishna/Book-Review-API/internal/infrastructure/persistence/mysql"
	"github.com/ReallyKrishna/Book-Review-API/internal/infrastructure/persistence/redis"
	"github.com/ReallyKrishna/Book-Review-API/internal/interface/http/handler"
	"github.com/ReallyKrishna/Book-Review-API/internal/interface/http/middleware"
	"github.com/ReallyKrishna/Book-Review-API/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,   // 用户仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewReviewRepository, // 评论仓储
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,   // 用户领域服务
	book.NewService,   // 图书领域服务
	review.NewService, // 评论领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,       // 用户注册用例
	appuser.NewLoginUseCase,          // 用户登录用例
	appuser.NewLogoutUseCase,         // 用户登出用例
	appbook.NewCreateBookUseCase,     // 图书创建用例
	appbook.NewListBooksUseCase,      // 图书列表用例
	appbook.NewSearchBooksUseCase,    // 图书搜索用例
	appbook.NewBookDetailUseCase,     // 图书详情用例
	appreview.NewSubmitReviewUseCase, // 评论提交用例
	appreview.NewEditReviewUseCase,   // 评论修改用例
	appreview.NewDeleteReviewUseCase, // 评论删除用例
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,            // JWT管理器（从config提取参数）
	provideSessionStore,          // Session存储
	middleware.NewAuthMiddleware, // 认证中间件
)

// cacheSet 缓存依赖
// *redis.DetailCache同时充当详情用例的DetailCache和写路径用例的DetailInvalidator
var cacheSet = wire.NewSet(
	redis.NewDetailCache,
	wire.Bind(new(appbook.DetailCache), new(*redis.DetailCache)),
	wire.Bind(new(appreview.DetailInvalidator), new(*redis.DetailCache)),
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,   // 用户处理器
	handler.NewBookHandler,   // 图书处理器
	handler.NewReviewHandler, // 评论处理器
)

// provideJWTManager 从配置创建JWT管理器
// config.Config包含多个字段,Wire无法自动提取,需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎,注册所有路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档（生产环境建议禁用或加访问控制）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 用户模块
	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
	}

	// 图书模块
	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBookDetail)
		books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
		books.POST("/:id/reviews", authMiddleware.RequireAuth(), reviewHandler.SubmitReview)
	}

	// 评论模块
	reviews := r.Group("/reviews")
	reviews.Use(authMiddleware.RequireAuth())
	{
		reviews.PUT("/:id", reviewHandler.EditReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)
	}

	return r
}

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		cacheSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
