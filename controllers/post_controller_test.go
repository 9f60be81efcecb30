package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"skatelog/models"
)

func TestListIsPublic(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")
	createTestPost(t, db, user.ID, "神奈川県", "This is test1")

	w := doGet(r, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Test skatepark") {
		t.Fatal("post not rendered")
	}
}

func TestListFiltersByQueryParam(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")
	kanagawa := createTestPost(t, db, user.ID, "神奈川県", "kanagawa post")
	tokyo := createTestPost(t, db, user.ID, "東京都", "tokyo post")

	w := doGet(r, "/?query="+url.QueryEscape("神奈川"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, fmt.Sprintf("/posts/detail/%d", kanagawa.ID)) {
		t.Fatal("matching post missing from filtered list")
	}
	if strings.Contains(body, fmt.Sprintf("/posts/detail/%d", tokyo.ID)) {
		t.Fatal("non-matching post present in filtered list")
	}
}

func TestDetailRequiresLogin(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")
	post := createTestPost(t, db, user.ID, "東京都", "Test body")

	w := doGet(r, fmt.Sprintf("/posts/detail/%d", post.ID), nil)
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/accounts/login" {
		t.Fatalf("redirected to %q", loc)
	}
}

func TestDetailRendersWeatherAndComments(t *testing.T) {
	server := weatherStub(t)
	r, db := setupTestApp(t, server.URL)
	user := createTestUser(t, db, "test@mail.com")
	post := createTestPost(t, db, user.ID, "神奈川県", "Test body")
	db.Create(&models.Comment{PostID: post.ID, AuthorID: user.ID, Body: "nice spot"})

	w := doGet(r, fmt.Sprintf("/posts/detail/%d", post.ID), sessionCookie(t, user.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "晴れ") {
		t.Fatal("weather missing from detail page")
	}
	if !strings.Contains(body, "nice spot") {
		t.Fatal("comment missing from detail page")
	}
}

func TestDetailMissingPostIs404(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")

	w := doGet(r, "/posts/detail/9999", sessionCookie(t, user.ID))
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestSubmitCommentEmptyBodyRedisplays(t *testing.T) {
	server := weatherStub(t)
	r, db := setupTestApp(t, server.URL)
	user := createTestUser(t, db, "test@mail.com")
	post := createTestPost(t, db, user.ID, "神奈川県", "Test body")

	w := doForm(r, fmt.Sprintf("/posts/detail/%d", post.ID),
		url.Values{"body": {""}}, sessionCookie(t, user.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want redisplay", w.Code)
	}

	var count int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Fatalf("got %d comments, want 0", count)
	}
}

func TestSubmitCommentValidBodyRedirectsToDetail(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")
	post := createTestPost(t, db, user.ID, "神奈川県", "Test body")

	w := doForm(r, fmt.Sprintf("/posts/detail/%d", post.ID),
		url.Values{"body": {"great transitions"}}, sessionCookie(t, user.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != fmt.Sprintf("/posts/detail/%d", post.ID) {
		t.Fatalf("redirected to %q", loc)
	}

	var count int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 1 {
		t.Fatalf("got %d comments, want 1", count)
	}
}

func TestCreatePostInvalidFormsRedisplayWithoutPersisting(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")

	form := url.Values{
		"body":       {strings.Repeat("あ", 301)},
		"name":       {strings.Repeat("t", 51)},
		"prefecture": {"かながわ県"},
		"city":       {"横浜市"},
	}
	w := doForm(r, "/posts/create", form, sessionCookie(t, user.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want redisplay", w.Code)
	}

	var posts, parks int64
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Skatepark{}).Count(&parks)
	if posts != 0 || parks != 0 {
		t.Fatalf("persisted %d posts and %d skateparks, want none", posts, parks)
	}
}

func TestCreatePostValidFormsRedirectToList(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")

	form := url.Values{
		"body":       {strings.Repeat("あ", 300)},
		"name":       {strings.Repeat("t", 50)},
		"prefecture": {"神奈川県"},
		"city":       {"横浜市"},
	}
	w := doForm(r, "/posts/create", form, sessionCookie(t, user.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirected to %q", loc)
	}

	var posts int64
	db.Model(&models.Post{}).Count(&posts)
	if posts != 1 {
		t.Fatalf("got %d posts, want 1", posts)
	}
}

func TestCreatePostStoresUploadedImage(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")

	form := url.Values{
		"body":       {"New park with a bowl"},
		"name":       {"Bowl park"},
		"prefecture": {"神奈川県"},
		"city":       {"横浜市"},
	}
	w := doMultipart(t, r, "/posts/create", form, "park.jpg", []byte("fake image bytes"), sessionCookie(t, user.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}

	var park models.Skatepark
	if err := db.First(&park).Error; err != nil {
		t.Fatalf("skatepark not created: %v", err)
	}
	if park.Image == "" {
		t.Fatal("uploaded image path not stored")
	}
	if _, err := os.Stat(park.Image); err != nil {
		t.Fatalf("uploaded file not saved: %v", err)
	}
	if !strings.HasSuffix(park.Image, "park.jpg") {
		t.Fatalf("stored path %q does not keep the original filename", park.Image)
	}
}

func TestCreatePostWithoutImageIsFine(t *testing.T) {
	r, db := setupTestApp(t, "")
	user := createTestUser(t, db, "test@mail.com")

	form := url.Values{
		"body":       {"No photo yet"},
		"name":       {"Plain park"},
		"prefecture": {"東京都"},
		"city":       {"渋谷区"},
	}
	w := doMultipart(t, r, "/posts/create", form, "", nil, sessionCookie(t, user.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}

	var park models.Skatepark
	if err := db.First(&park).Error; err != nil {
		t.Fatalf("skatepark not created: %v", err)
	}
	if park.Image != "" {
		t.Fatalf("got image path %q, want empty", park.Image)
	}
}

func TestDeleteByNonAuthorRedirectsToDetail(t *testing.T) {
	r, db := setupTestApp(t, "")
	author := createTestUser(t, db, "author@mail.com")
	other := createTestUser(t, db, "other@mail.com")
	post := createTestPost(t, db, author.ID, "東京都", "Test body")

	w := doForm(r, fmt.Sprintf("/posts/delete/%d", post.ID), url.Values{}, sessionCookie(t, other.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != fmt.Sprintf("/posts/detail/%d", post.ID) {
		t.Fatalf("redirected to %q", loc)
	}

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	if count != 1 {
		t.Fatal("post was deleted by a non-author")
	}
}

func TestDeleteByAuthorRedirectsToList(t *testing.T) {
	r, db := setupTestApp(t, "")
	author := createTestUser(t, db, "author@mail.com")
	post := createTestPost(t, db, author.ID, "東京都", "Test body")

	w := doForm(r, fmt.Sprintf("/posts/delete/%d", post.ID), url.Values{}, sessionCookie(t, author.ID))
	if w.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirected to %q", loc)
	}

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Fatal("post still exists after author delete")
	}
}
