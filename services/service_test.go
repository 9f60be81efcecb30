package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"skatelog/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB opens a fresh in-memory database per test. The named
// shared-cache DSN keeps all pooled connections on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Skatepark{}, &models.Post{}, &models.Comment{})
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Username: "testuser", Password: "testpassword"}
	if err := user.HashPassword(); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, prefecture, body string) *models.Post {
	t.Helper()

	park := &models.Skatepark{Name: "Test skatepark", Prefecture: prefecture, City: "横浜市"}
	if err := db.Create(park).Error; err != nil {
		t.Fatalf("create skatepark: %v", err)
	}
	post := &models.Post{AuthorID: authorID, SkateparkID: park.ID, Body: body}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
