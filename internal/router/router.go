package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/handler"
	"github.com/cleanblog/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// ErrRootUploadPath 上传目录不能挂在站点根路径，否则与首页路由冲突
var ErrRootUploadPath = errors.New("UPLOAD_URL_PATH must not be the site root")

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API) (*gin.Engine, error) {
	uploadURL := "/" + strings.Trim(cfg.UploadURLPath, "/ ")
	if uploadURL == "/" {
		return nil, ErrRootUploadPath
	}

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(handler.RequestID())

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(handler.SessionName(), store))

	// 加载内嵌模板
	tmpl, err := web.Templates(nil)
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// 静态文件服务
	r.StaticFS("/static/css", http.FS(web.Stylesheets()))
	r.Static(uploadURL, cfg.UploadDir)
	if uploadURL != "/uploads" {
		r.Static("/uploads", cfg.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// 前台路由
	r.GET("/", api.ShowHome)
	r.GET("/post/:slug", api.ShowPost)
	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	// 登录与管理面板
	r.GET("/dashboard", api.ShowDashboard)
	r.POST("/dashboard", api.Login)
	r.GET("/logout", api.Logout)

	// 需要认证的后台路由
	auth := r.Group("")
	auth.Use(api.AuthRequired())
	{
		auth.GET("/edit/:id", api.ShowPostEdit)
		auth.POST("/edit/:id", api.SavePost)
		auth.GET("/delete/:id", api.DeletePost)
		auth.POST("/delete/:id", api.DeletePost)
		auth.POST("/uploader", api.UploadImage)
	}

	return r, nil
}
