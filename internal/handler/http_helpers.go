package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func statusForError(err error) int {
	var verr *service.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error) string {
	var derr *service.DeliveryError
	switch status := statusForError(err); {
	case status == http.StatusNotFound:
		return "The page you were looking for does not exist."
	case errors.As(err, &derr):
		return "Your message was saved but could not be delivered. Please try again later."
	default:
		return "Something went wrong on our side. Please try again later."
	}
}

// renderFailure 记录内部错误并渲染不含内部细节的错误页
func (a *API) renderFailure(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", RequestIDFrom(c), c.Request.Method, c.Request.URL.Path, err)
	}
	c.Error(err)
	a.renderHTML(c, status, "error.html", gin.H{
		"title": "Error",
		"error": publicMessage(err),
	})
}
