package handler

import (
	"time"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts        *service.PostService
	contacts     *service.ContactService
	auth         *service.AuthService
	site         config.SiteConfig
	postsPerPage int
	uploadDir    string
	uploadURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, auth *service.AuthService, notifier service.Notifier) *API {
	return &API{
		posts:        service.NewPostService(gdb),
		contacts:     service.NewContactService(gdb, notifier),
		auth:         auth,
		site:         cfg.Site,
		postsPerPage: cfg.PostsPerPage,
		uploadDir:    cfg.UploadDir,
		uploadURL:    cfg.UploadURLPath,
	}
}

// renderHTML 渲染模板时统一附加站点参数与登录状态
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = a.site
	}
	if _, exists := payload["admin"]; !exists {
		payload["admin"] = a.session(c).IsAdmin()
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
