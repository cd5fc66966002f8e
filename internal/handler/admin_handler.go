package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowDashboard 已登录时展示文章管理列表，否则渲染登录页
func (a *API) ShowDashboard(c *gin.Context) {
	sess := a.session(c)
	if !sess.IsAdmin() {
		a.renderHTML(c, http.StatusOK, "login.html", gin.H{
			"title":   "Login",
			"heading": "Admin Login",
			"flashes": sess.flashes(),
		})
		return
	}

	a.renderDashboard(c)
}

// Login 处理登录表单，失败时带提示重定向回 /dashboard
func (a *API) Login(c *gin.Context) {
	sess := a.session(c)
	if sess.IsAdmin() {
		a.renderDashboard(c)
		return
	}

	ok, err := sess.Login(c.PostForm("uname"), c.PostForm("upass"))
	if err != nil {
		a.renderFailure(c, err)
		return
	}
	if !ok {
		sess.flash("Invalid username or password.")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	a.renderDashboard(c)
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	if err := a.session(c).Logout(); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusFound, loginPath)
}

func (a *API) renderDashboard(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		a.renderFailure(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":   "Dashboard",
		"heading": "Admin Dashboard",
		"admin":   true,
		"posts":   posts,
	})
}
