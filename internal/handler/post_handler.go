package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/service"
	"github.com/gin-gonic/gin"
)

// NewPostID 是编辑页中代表“新建文章”的保留标识
const NewPostID = "new-post"

func postInputFromPost(post *db.Post) service.PostInput {
	return service.PostInput{
		Title:      post.Title,
		Tagline:    post.Tagline,
		Slug:       post.Slug,
		Content:    post.Content,
		ImageURL:   post.ImageURL,
		AuthorName: post.AuthorName,
	}
}

func postInputFromForm(c *gin.Context) service.PostInput {
	return service.PostInput{
		Title:      c.PostForm("title"),
		Tagline:    c.PostForm("tag_line"),
		Slug:       c.PostForm("slug"),
		Content:    c.PostForm("content"),
		ImageURL:   c.PostForm("img_url"),
		AuthorName: c.PostForm("name"),
	}
}

// ShowPostEdit 渲染编辑表单，新建时为空表单
func (a *API) ShowPostEdit(c *gin.Context) {
	sno := c.Param("id")
	if sno == NewPostID {
		a.renderEditForm(c, http.StatusOK, sno, service.PostInput{}, nil)
		return
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderFailure(c, service.ErrPostNotFound)
		return
	}

	post, err := a.posts.FindByID(id)
	if err != nil {
		a.renderFailure(c, err)
		return
	}

	a.renderEditForm(c, http.StatusOK, sno, postInputFromPost(post), nil)
}

// SavePost 新建或更新文章，成功后都跳转到该文章的编辑页
func (a *API) SavePost(c *gin.Context) {
	sno := c.Param("id")
	input := postInputFromForm(c)

	var (
		post *db.Post
		err  error
	)
	if sno == NewPostID {
		post, err = a.posts.Create(input)
	} else {
		id, parseErr := parseUintParam(c, "id")
		if parseErr != nil {
			a.renderFailure(c, service.ErrPostNotFound)
			return
		}
		post, err = a.posts.Update(id, input)
	}

	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			a.renderEditForm(c, http.StatusBadRequest, sno, input, verr)
			return
		}
		a.renderFailure(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", post.ID))
}

// DeletePost 删除文章后回到管理面板
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderFailure(c, service.ErrPostNotFound)
		return
	}

	if err := a.posts.Delete(id); err != nil {
		a.renderFailure(c, err)
		return
	}

	c.Redirect(http.StatusFound, loginPath)
}

func (a *API) renderEditForm(c *gin.Context, status int, sno string, form service.PostInput, invalid *service.ValidationError) {
	heading := "Edit Post"
	if sno == NewPostID {
		heading = "New Post"
	}
	message := ""
	if invalid != nil {
		message = "Please fill in: " + strings.Join(invalid.Fields, ", ")
	}
	a.renderHTML(c, status, "edit.html", gin.H{
		"title":   heading,
		"heading": heading,
		"sno":     sno,
		"form":    form,
		"error":   message,
		"invalid": invalid,
	})
}
