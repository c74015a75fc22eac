package main

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	cms_sdk "github.com/lguportal/cms-sdk"
	"github.com/lguportal/cms-sdk/storage"
)

// envConfig 进程启动所需的全部环境变量。
// 数据库/对象存储/webhook 密钥缺一不可，缺了直接起不来。
type envConfig struct {
	DatabaseDSN   string `env:"DATABASE_DSN,required"`
	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	WebhookSecret string `env:"WEBHOOK_SECRET,required"`

	// 对象存储：本例用磁盘实现，ObjectRoot 下按桶分目录，
	// PublicBaseURL 是对外静态地址前缀。
	ObjectRoot    string `env:"OBJECT_ROOT" envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080/static"`

	Listen string `env:"LISTEN" envDefault:":8080"`
	Debug  bool   `env:"DEBUG"`
}

func main() {
	// 1. 环境配置（required 缺失时这里就退出）
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("环境配置不完整: ", err)
	}

	// 2. 初始化数据库连接
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("数据库连接失败: ", err)
	}

	// 3. Redis（登录 token 存储）
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})

	// 4. 对象存储（磁盘实现；生产可替换为任意 storage.ObjectStore）
	store, err := storage.NewDiskStore(cfg.ObjectRoot, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("对象存储初始化失败: ", err)
	}

	// 5. 初始化 CMS Engine（单例模式，全局只需调用一次）
	engine := cms_sdk.NewEngine(
		cms_sdk.WithDB(db),
		cms_sdk.WithRDB(rdb),
		cms_sdk.WithObjectStore(store),
		cms_sdk.WithWebhookSecret(cfg.WebhookSecret),
		cms_sdk.WithServiceDebug(cfg.Debug),
	)

	// 6. 创建 Gin 路由
	r := gin.Default()

	// 静态图片（磁盘对象存储的公开面）
	r.Static("/static", cfg.ObjectRoot)

	// 注册 Swagger UI
	cms_sdk.RegisterSwagger(r, "/swagger/*any")

	// 公开页数据
	r.GET("/home", engine.GinHandlePublicHome)
	r.GET("/bulletins", engine.GinHandlePublicBulletins)
	r.GET("/news", engine.GinHandlePublicNews)

	// 一次性初始化（有用户行之后自禁用）
	r.GET("/setup", engine.GinHandleSetupStatus)
	r.POST("/setup", engine.GinHandleSetup)

	// 登录 / webhook（免登录）
	r.POST("/auth/login", engine.GinHandleLogin)
	r.POST("/api/notifications/google-form", engine.GinHandleGoogleFormWebhook)

	// 后台实时通知（升级前自行鉴权）
	r.GET("/ws/notifications", engine.GinHandleNotificationsWS)

	// 后台路由组（token 鉴权）
	admin := r.Group("/admin")
	admin.Use(engine.GinAuthMiddleware())
	{
		admin.POST("/logout", engine.GinHandleLogout)
		admin.GET("/me", engine.GinHandleCurrentUser)
		admin.GET("/dashboard", engine.GinHandleDashboard)

		admin.GET("/bulletins", engine.GinHandleListBulletins)
		admin.POST("/bulletins", engine.GinHandleCreateBulletin)
		admin.GET("/bulletins/:id", engine.GinHandleGetBulletin)
		admin.POST("/bulletins/:id", engine.GinHandleUpdateBulletin)
		admin.DELETE("/bulletins/:id", engine.GinHandleDeleteBulletin)

		admin.GET("/news", engine.GinHandleListNews)
		admin.POST("/news", engine.GinHandleCreateNews)
		admin.GET("/news/:id", engine.GinHandleGetNews)
		admin.POST("/news/:id", engine.GinHandleUpdateNews)
		admin.DELETE("/news/:id", engine.GinHandleDeleteNews)

		admin.GET("/notifications/unread", engine.GinHandleListUnreadNotifications)
		admin.GET("/notifications/unread/count", engine.GinHandleUnreadNotificationCount)
		admin.POST("/notifications/:id/read", engine.GinHandleMarkNotificationRead)

		admin.GET("/requests/certificates", engine.GinHandleCertificateRequests)
		admin.GET("/requests/business-permits", engine.GinHandleBusinessPermitRequests)
		admin.GET("/requests/reports", engine.GinHandleReportsAndConcerns)

		admin.GET("/api/patch-notes", engine.GinHandleListPatchNotes)
		admin.GET("/api/patch-notes/latest", engine.GinHandleLatestPatchNote)
		admin.GET("/api/system-maintenance", engine.GinHandleListMaintenance)
		admin.GET("/api/system-maintenance/latest", engine.GinHandleLatestMaintenance)
	}

	// 7. 启动服务器
	log.Println("CMS Server 启动在 " + cfg.Listen)
	log.Println("Swagger UI: http://localhost:8080/swagger/index.html")
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatal("服务器启动失败: ", err)
	}
}
