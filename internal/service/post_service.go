package service

import (
	"errors"
	"strings"

	"github.com/cleanblog/internal/db"
	"gorm.io/gorm"
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostInput represents the form fields accepted when creating or updating a post.
type PostInput struct {
	Title      string
	Tagline    string
	Slug       string
	Content    string
	ImageURL   string
	AuthorName string
}

// PostPage is one page of posts together with its navigation.
type PostPage struct {
	Posts      []db.Post
	Pagination Pagination
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// Validate checks that every field is present.
func (in PostInput) Validate() error {
	return requireFields([][2]string{
		{"title", in.Title},
		{"tag_line", in.Tagline},
		{"slug", in.Slug},
		{"content", in.Content},
		{"img_url", in.ImageURL},
		{"name", in.AuthorName},
	})
}

func (in PostInput) normalized() PostInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.Slug = strings.TrimSpace(in.Slug)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.AuthorName = strings.TrimSpace(in.AuthorName)
	return in
}

// ListAll returns all posts in insertion order.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Order("id asc").Find(&posts).Error; err != nil {
		return nil, storageErr("list posts", err)
	}
	return posts, nil
}

// ListPage returns the posts that fall on page, perPage at a time.
func (s *PostService) ListPage(page, perPage int) (*PostPage, error) {
	var total int64
	if err := s.db.Model(&db.Post{}).Count(&total).Error; err != nil {
		return nil, storageErr("count posts", err)
	}

	pagination := Paginate(page, total, perPage)

	var posts []db.Post
	if err := s.db.Order("id asc").
		Limit(pagination.PerPage).
		Offset(pagination.Offset).
		Find(&posts).Error; err != nil {
		return nil, storageErr("list posts page", err)
	}

	return &PostPage{Posts: posts, Pagination: pagination}, nil
}

// FindBySlug returns the earliest post carrying slug.
func (s *PostService) FindBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ?", strings.TrimSpace(slug)).Order("id asc").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, storageErr("find post by slug", err)
	}
	return &post, nil
}

// FindByID fetches a post by id.
func (s *PostService) FindByID(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, storageErr("find post", err)
	}
	return &post, nil
}

// Create validates input and persists a new post.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalized()

	post := db.Post{
		ImageURL:   input.ImageURL,
		Title:      input.Title,
		Tagline:    input.Tagline,
		Slug:       input.Slug,
		Content:    input.Content,
		AuthorName: input.AuthorName,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, storageErr("create post", err)
	}
	return &post, nil
}

// Update overwrites the editable fields of an existing post.
// An unknown id is reported before the input is validated.
// The creation timestamp is left untouched.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var post db.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return storageErr("load post", err)
		}
		if err := input.Validate(); err != nil {
			return err
		}
		input = input.normalized()

		post.ImageURL = input.ImageURL
		post.Title = input.Title
		post.Tagline = input.Tagline
		post.Slug = input.Slug
		post.Content = input.Content
		post.AuthorName = input.AuthorName

		if err := tx.Save(&post).Error; err != nil {
			return storageErr("update post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes a post by id.
func (s *PostService) Delete(id uint) error {
	result := s.db.Delete(&db.Post{}, id)
	if result.Error != nil {
		return storageErr("delete post", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
