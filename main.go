package main

import (
	"flag"
	"log"
	"strings"

	"expense-api/auth"
	"expense-api/config"
	"expense-api/database"
	"expense-api/router"

	"github.com/joho/godotenv"
)

// @title Expense Tracker API
// @version 1.0
// @description 记账 API：用户注册登录、消费类别与消费记录管理、筛选汇总与导出
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Expense Tracker API v1.0.0")
		return
	}

	// .env 不存在时忽略
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env 文件")
	}

	// 加载配置（内置配置 + 可选的外部配置 + 环境变量覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	auth.InitJWT(cfg)

	r := router.SetupRouter(cfg, database.DB)

	log.Printf("==========================================")
	log.Printf("  Expense Tracker API 已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
