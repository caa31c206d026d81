package router

import (
	"net/http"
	"time"

	"expense-api/api"
	"expense-api/config"
	_ "expense-api/docs"
	"expense-api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// WelcomeMessage 根路径返回的欢迎信息
const WelcomeMessage = "Welcome to the Expense Tracker API! This project is designed to help you manage and track your expenses efficiently. Feel free to explore and contribute to this brainstorming project."

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), middleware.Recovery())
	r.Use(CORSMiddleware(cfg.Server.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")

	// 认证相关路由
	authHandler := api.NewAuthHandler(cfg, db)
	auth := apiGroup.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", loginRateLimit(cfg.RateLimit), authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.CookieAuth(), authHandler.Me)
	}

	// 需要 Cookie 认证的路由
	authorized := apiGroup.Group("")
	authorized.Use(middleware.CookieAuth())
	{
		categoryHandler := api.NewCategoryHandler(db)
		categories := authorized.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:id", categoryHandler.Get)
			categories.PATCH("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		expenseHandler := api.NewExpenseHandler(db, cfg.Expense.UniquePerCategory)
		expenses := authorized.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/filter", expenseHandler.Filter)
			expenses.GET("/summary", expenseHandler.Summary)
			expenses.GET("/export", expenseHandler.Export)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PATCH("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		api.NotFound(c, "Route not found")
	})

	return r
}

// loginRateLimit 未配置时每 IP 每分钟 10 次
func loginRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	attempts, window := cfg.LoginAttempts, cfg.Window
	if attempts <= 0 {
		attempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return middleware.LoginRateLimit(attempts, window)
}

// CORSMiddleware CORS 跨域中间件
// 未配置来源或包含 "*" 时允许任意来源，但不携带凭证
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{api.TotalCountHeader, middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
