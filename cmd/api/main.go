package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	"github.com/ReallyKrishna/Book-Review-API/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入,与cmd/api/wire.go的Wire配置保持一致
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	detailCache := redis.NewDetailCache(redisClient, cfg)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	reviewService := review.NewService(reviewRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)
	bookDetailUseCase := appbook.NewBookDetailUseCase(bookService, reviewService, detailCache)
	submitReviewUseCase := appreview.NewSubmitReviewUseCase(reviewService, bookService, detailCache)
	editReviewUseCase := appreview.NewEditReviewUseCase(reviewService, detailCache)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(reviewService, detailCache)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, searchBooksUseCase, bookDetailUseCase)
	reviewHandler := handler.NewReviewHandler(submitReviewUseCase, editReviewUseCase, deleteReviewUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 6. 注册路由
	registerRoutes(r, userHandler, bookHandler, reviewHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   图书列表: GET http://localhost%s/books\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
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
		// 公开接口
		books.GET("", bookHandler.ListBooks)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBookDetail)

		// 需要登录
		books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
		books.POST("/:id/reviews", authMiddleware.RequireAuth(), reviewHandler.SubmitReview)
	}

	// 评论模块（修改/删除需要登录且只能操作自己的评论）
	reviews := r.Group("/reviews")
	reviews.Use(authMiddleware.RequireAuth())
	{
		reviews.PUT("/:id", reviewHandler.EditReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)
	}
}
