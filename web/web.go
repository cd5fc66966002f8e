// Package web embeds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed template/*.html
var templateFS embed.FS

//go:embed static/css/*.css
var staticFS embed.FS

// Templates 解析所有页面模板，funcs 需在解析前注册
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "template/*.html")
}

// Stylesheets 返回以 static/css 为根的样式文件系统
func Stylesheets() fs.FS {
	sub, err := fs.Sub(staticFS, "static/css")
	if err != nil {
		panic(err)
	}
	return sub
}
