package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPostsPerPage  = 5
	defaultSessionSecret = "cleanblog-dev-secret"
)

// AppConfig 汇总运行服务所需的基础配置，启动时构造一次后只读。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	UploadDir         string
	UploadURLPath     string
	AdminUser         string
	AdminPassword     string
	AdminPasswordHash string
	PostsPerPage      int
	Mail              MailConfig
	Site              SiteConfig
}

// MailConfig 描述联系表单通知所用的 SMTP 账号。
type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// Enabled 仅在主机与账号都配置时才投递真实邮件。
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Username != ""
}

// UsesDefaultSessionSecret 为 true 时会话 cookie 可被伪造，只适合本地开发
func (c AppConfig) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == defaultSessionSecret
}

// SiteConfig 是渲染模板时附带的站点参数。
type SiteConfig struct {
	Name    string
	Tagline string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOrDefault("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	// LOCAL_SERVER=false 时切换到生产库
	databasePath := envOrDefault("DATABASE_PATH", "cleanblog.db")
	if !envBool("LOCAL_SERVER", true) {
		databasePath = envOrDefault("PROD_DATABASE_PATH", databasePath)
	}

	mailUser := strings.TrimSpace(os.Getenv("SMTP_USER"))

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     envOrDefault("SESSION_SECRET", defaultSessionSecret),
		GinMode:           envOrDefault("GIN_MODE", "release"),
		UploadDir:         envOrDefault("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath:     envOrDefault("UPLOAD_URL_PATH", "/static/uploads"),
		AdminUser:         envOrDefault("ADMIN_USER", "admin"),
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		PostsPerPage:      envPositiveInt("POSTS_PER_PAGE", defaultPostsPerPage),
		Mail: MailConfig{
			Host:      envOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:      envPositiveInt("SMTP_PORT", 465),
			Username:  mailUser,
			Password:  os.Getenv("SMTP_PASSWORD"),
			Recipient: envOrDefault("CONTACT_RECIPIENT", mailUser),
		},
		Site: SiteConfig{
			Name:    envOrDefault("SITE_NAME", "Clean Blog"),
			Tagline: envOrDefault("SITE_TAGLINE", "Notes, essays and the occasional rant"),
		},
	}
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envPositiveInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
