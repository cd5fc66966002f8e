package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowHome renders the paginated post list.
func (a *API) ShowHome(c *gin.Context) {
	page := service.ParsePage(c.Query("page"))

	result, err := a.posts.ListPage(page, a.postsPerPage)
	if err != nil {
		a.renderFailure(c, err)
		return
	}

	a.renderHTML(c, http.StatusOK, "index.html", gin.H{
		"title":      "Home",
		"posts":      result.Posts,
		"pagination": result.Pagination,
	})
}

// ShowPost renders a single post looked up by slug.
// Unknown slugs get the same template with no post and a 404 status.
func (a *API) ShowPost(c *gin.Context) {
	post, err := a.posts.FindBySlug(c.Param("slug"))
	if err != nil {
		if !errors.Is(err, service.ErrPostNotFound) {
			a.renderFailure(c, err)
			return
		}
		a.renderHTML(c, http.StatusNotFound, "post.html", gin.H{
			"title":   "Post not found",
			"heading": "Post not found",
			"post":    (*db.Post)(nil),
		})
		return
	}

	content, err := renderMarkdown(post.Content)
	if err != nil {
		c.Error(err) // 渲染失败时退回纯文本
		content = template.HTML(template.HTMLEscapeString(post.Content))
	}

	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"title":      post.Title,
		"heading":    post.Title,
		"subheading": post.Tagline,
		"post":       post,
		"content":    content,
	})
}

// ShowAbout renders the static about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title":   "About",
		"heading": "About Me",
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
