package handler

import (
	"net/http"

	"github.com/cleanblog/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionName    = "cleanblog_session"
	sessionUserKey = "user"
	loginPath      = "/dashboard"
)

// SessionName 返回会话 cookie 名称，供路由注册会话中间件
func SessionName() string {
	return sessionName
}

// adminSession 是单次请求内的登录状态句柄
type adminSession struct {
	store sessions.Session
	auth  *service.AuthService
}

func (a *API) session(c *gin.Context) adminSession {
	return adminSession{store: sessions.Default(c), auth: a.auth}
}

// IsAdmin 仅当会话中的用户名等于配置的管理员用户名时成立
func (s adminSession) IsAdmin() bool {
	return s.auth.IsAdmin(s.store.Get(sessionUserKey))
}

// Login 校验凭据，成功后写入会话
func (s adminSession) Login(username, password string) (bool, error) {
	if !s.auth.Authenticate(username, password) {
		return false, nil
	}
	s.store.Set(sessionUserKey, s.auth.Username())
	return true, s.store.Save()
}

// Logout 无论当前状态如何都清空会话
func (s adminSession) Logout() error {
	s.store.Clear()
	return s.store.Save()
}

func (s adminSession) flash(message string) {
	s.store.AddFlash(message)
	_ = s.store.Save()
}

func (s adminSession) flashes() []interface{} {
	values := s.store.Flashes()
	if len(values) > 0 {
		_ = s.store.Save()
	}
	return values
}

// AuthRequired 拦截未登录请求并跳转回登录页
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.session(c).IsAdmin() {
			c.Error(service.ErrUnauthorized)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
