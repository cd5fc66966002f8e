package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowContact 渲染联系表单
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":   "Contact",
		"heading": "Contact Me",
		"form":    service.ContactInput{},
		"invalid": (*service.ValidationError)(nil),
	})
}

// SubmitContact 保存留言并通知站长
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Phone:   c.PostForm("phone"),
		Message: c.PostForm("message"),
	}

	if _, err := a.contacts.Submit(c.Request.Context(), input); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
				"title":   "Contact",
				"heading": "Contact Me",
				"form":    input,
				"error":   "Please check these fields: " + strings.Join(verr.Fields, ", "),
				"invalid": verr,
			})
			return
		}
		a.renderFailure(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":   "Contact",
		"heading": "Contact Me",
		"form":    service.ContactInput{},
		"invalid": (*service.ValidationError)(nil),
		"sent":    true,
	})
}
