package main

import (
	"testing"

	"github.com/cleanblog/internal/db"
	"github.com/cleanblog/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSeedTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return gdb
}

func TestSeedPostsIsIdempotent(t *testing.T) {
	gdb := openSeedTestDB(t, "seed-posts")
	svc := service.NewPostService(gdb)

	created, err := seedPosts(gdb, samplePosts)
	if err != nil {
		t.Fatalf("seed posts: %v", err)
	}
	if created != len(samplePosts) {
		t.Fatalf("expected %d posts, got %d", len(samplePosts), created)
	}

	again, err := seedPosts(gdb, samplePosts)
	if err != nil {
		t.Fatalf("reseed posts: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected reseed to skip, created %d", again)
	}

	for _, input := range samplePosts {
		if _, err := svc.FindBySlug(input.Slug); err != nil {
			t.Fatalf("expected seeded slug %q: %v", input.Slug, err)
		}
	}
}

func TestSeedPostsRollsBackOnFailure(t *testing.T) {
	gdb := openSeedTestDB(t, "seed-posts-rollback")

	inputs := []service.PostInput{samplePosts[0], {Title: "Broken"}, samplePosts[1]}
	created, err := seedPosts(gdb, inputs)
	if err == nil {
		t.Fatal("expected an error for the invalid sample")
	}
	if created != 0 {
		t.Fatalf("expected nothing reported as created, got %d", created)
	}

	svc := service.NewPostService(gdb)
	existing, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(existing) != 0 {
		t.Fatalf("expected rollback to leave no posts, got %d", len(existing))
	}

	created, err = seedPosts(gdb, samplePosts)
	if err != nil {
		t.Fatalf("reseed after failure: %v", err)
	}
	if created != len(samplePosts) {
		t.Fatalf("expected %d posts on retry, got %d", len(samplePosts), created)
	}
}
