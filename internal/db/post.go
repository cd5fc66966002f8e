package db

import "gorm.io/gorm"

// Post 定义了文章模型
// Slug 建索引但不唯一，重复时按 ID 取第一篇
type Post struct {
	gorm.Model
	ImageURL   string `gorm:"size:200;not null"`
	Title      string `gorm:"size:80;not null"`
	Tagline    string `gorm:"size:80;not null"`
	Slug       string `gorm:"size:64;index;not null"`
	Content    string `gorm:"type:text;not null"`
	AuthorName string `gorm:"size:40;not null"`
}

// PostedOn 返回用于模板展示的发布日期
func (p Post) PostedOn() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.Format("January 2, 2006")
}
