package main

import (
	"log"

	"backend/config"
	"backend/controllers"
	_ "backend/docs" // 导入 swagger 生成的文档
	"backend/middleware"
	"backend/migrations"
	"backend/models"
	"backend/services/enrich"
	"backend/services/mail"
	"backend/services/rawg"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           LatestGames API
// @version         1.0
// @description     这是一个游戏资料库的后端API服务
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8081
// @BasePath  /api/v1
func main() {
	// 初始化日志系统
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Error initializing logger:", err)
	}

	// .env 不存在时继续使用进程环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	// 设置全局数据库连接
	models.SetDB(db)

	// 为历史数据补算评分颜色
	migrations.BackfillMetascoreColor()

	client := rawg.NewClient(cfg)
	enrichService := enrich.NewService(db, client, cfg)
	mailService := mail.NewMailService(&cfg.Mail)
	enrichController := controllers.NewEnrichController(enrichService, mailService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.CORS())

	// 本地截图静态文件服务
	r.Static("/shots", cfg.ShotsDir)

	// 添加 swagger 路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 公开路由
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		v1.GET("/games", controllers.GetGames)
		v1.GET("/games/:slug", controllers.GetGameBySlug)

		// 管理路由组
		admin := v1.Group("/admin")
		{
			// 系统统计和状态路由
			admin.GET("/stats", controllers.GetSystemStats)
			admin.GET("/system/status", controllers.GetSystemStatus)
			admin.GET("/logs", controllers.GetLogs)
			admin.GET("/logs/watch", controllers.WatchLogs)

			// 补全任务相关API
			admin.POST("/enrich/run", enrichController.RunEnrichment)
			admin.POST("/enrich/ids", enrichController.EnrichByIDs)
			admin.GET("/enrich/status", enrichController.GetEnrichmentStatus)
		}
	}

	// 初始化补全定时任务调度器
	sweepScheduler := enrich.NewSweepScheduler(enrichService, cfg.SweepInterval)
	go sweepScheduler.Start()

	r.Run(cfg.HTTPAddr)
}
