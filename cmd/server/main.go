package main

import (
	"log"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/handler"
	"github.com/cleanblog/internal/notify"
	"github.com/cleanblog/internal/router"
	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时直接使用进程环境变量
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if cfg.UsesDefaultSessionSecret() {
		log.Printf("WARNING: SESSION_SECRET is not set; admin session cookies can be forged")
	}
	if cfg.AdminPassword != "" && cfg.AdminPasswordHash == "" {
		log.Printf("WARNING: ADMIN_PASSWORD is plaintext; prefer ADMIN_PASSWORD_HASH")
	}
	auth, err := service.NewAuthService(cfg.AdminUser, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		log.Fatalf("failed to configure admin credentials: %v", err)
	}

	var notifier service.Notifier = notify.LogNotifier{}
	if cfg.Mail.Enabled() {
		mailer, err := notify.NewMailer(cfg.Mail)
		if err != nil {
			log.Fatalf("failed to configure mailer: %v", err)
		}
		notifier = mailer
	} else {
		log.Printf("SMTP_USER not set, contact messages will only be logged")
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(gdb, cfg, auth, notifier)
	r, err := router.SetupRouter(cfg, api)
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
