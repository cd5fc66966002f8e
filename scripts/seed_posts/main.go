package main

import (
	"fmt"
	"log"

	"github.com/cleanblog/internal/config"
	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/service"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var samplePosts = []service.PostInput{
	{
		Title:      "Hello, world",
		Tagline:    "Why this blog exists",
		Slug:       "hello-world",
		Content:    "Every blog starts with a **first post**. This is mine.",
		ImageURL:   "https://images.unsplash.com/photo-1499750310107-5fef28a66643",
		AuthorName: "Admin",
	},
	{
		Title:      "Notes on pagination",
		Tagline:    "Previous, next and everything in between",
		Slug:       "notes-on-pagination",
		Content:    "The front page shows a fixed number of posts.\n\nOlder posts live on the following pages.",
		ImageURL:   "https://images.unsplash.com/photo-1455390582262-044cdead277a",
		AuthorName: "Admin",
	},
	{
		Title:      "A reading list",
		Tagline:    "Books worth a second read",
		Slug:       "a-reading-list",
		Content:    "- The Pragmatic Programmer\n- A Philosophy of Software Design\n- The Go Programming Language",
		ImageURL:   "https://images.unsplash.com/photo-1512820790803-83ca734da794",
		AuthorName: "Admin",
	},
	{
		Title:      "Writing in markdown",
		Tagline:    "Formatting cheatsheet for new posts",
		Slug:       "writing-in-markdown",
		Content:    "Use `#` for headings, `**` for bold and blank lines between paragraphs.",
		ImageURL:   "https://images.unsplash.com/photo-1517842645767-c639042777db",
		AuthorName: "Admin",
	},
	{
		Title:      "Get in touch",
		Tagline:    "The contact form is open",
		Slug:       "get-in-touch",
		Content:    "Messages sent through the contact page land straight in my inbox.",
		ImageURL:   "https://images.unsplash.com/photo-1423666639041-f56000c27a9a",
		AuthorName: "Admin",
	},
}

// 示例文章生成器，已有文章时跳过
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	created, err := seedPosts(gdb, samplePosts)
	if err != nil {
		log.Fatal("生成示例文章失败:", err)
	}
	fmt.Printf("示例文章生成完成：新增 %d 篇\n", created)
}

// seedPosts 在单个事务内写入示例文章，任一失败则全部回滚
func seedPosts(gdb *gorm.DB, inputs []service.PostInput) (int, error) {
	created := 0
	err := gdb.Transaction(func(tx *gorm.DB) error {
		posts := service.NewPostService(tx)
		existing, err := posts.ListAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			fmt.Println("文章已存在，跳过创建")
			return nil
		}

		for _, input := range inputs {
			if _, err := posts.Create(input); err != nil {
				return fmt.Errorf("create %q: %w", input.Slug, err)
			}
		}
		created = len(inputs)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
