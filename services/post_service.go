package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skatelog/models"

	"gorm.io/gorm"
)

// WeatherPlaceholder is shown on the detail page when the forecast
// lookup fails for any reason.
const WeatherPlaceholder = "エラーが起きました"

type PostService struct {
	db      *gorm.DB
	weather *WeatherService
}

func NewPostService(db *gorm.DB, weather *WeatherService) *PostService {
	return &PostService{db: db, weather: weather}
}

// ListPosts returns all posts, or, when query is non-empty, the posts
// whose skatepark prefecture contains query as a substring. Substring
// rather than exact match: prefecture names are entered with and
// without the trailing 県/都/府 suffix, so "神奈川" has to find
// "神奈川県" too. The query is a literal substring; LIKE
// metacharacters in it do not act as wildcards.
func (s *PostService) ListPosts(query string) ([]models.Post, error) {
	var posts []models.Post

	tx := s.db.Preload("Author").Preload("Skatepark")
	if query != "" {
		tx = tx.Joins("JOIN skateparks ON skateparks.id = posts.skatepark_id").
			Where(`skateparks.prefecture LIKE ? ESCAPE '\'`, "%"+escapeLike(query)+"%")
	}

	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// escapeLike neutralizes LIKE metacharacters so user input matches
// literally inside a pattern built with ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// GetPost loads one post with its author and skatepark.
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Skatepark").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PostDetail is the context bundle for the detail page.
type PostDetail struct {
	Post     *models.Post
	Comments []models.Comment
	Weather  string
}

// GetPostDetail assembles the detail page: the post, its comments in
// insertion order, and a best-effort weather string for the
// skatepark's prefecture. A weather failure is logged and masked by
// the placeholder; an unknown prefecture on a stored row is corrupt
// data and is returned as an error.
func (s *PostService) GetPostDetail(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	cityCode, err := models.PrefectureCode(post.Skatepark.Prefecture)
	if err != nil {
		return nil, fmt.Errorf("post %d: prefecture %q: %w", post.ID, post.Skatepark.Prefecture, err)
	}

	weather, err := s.weather.Fetch(ctx, cityCode)
	if err != nil {
		log.Printf("weather lookup failed for city %s: %v", cityCode, err)
		weather = WeatherPlaceholder
	}

	return &PostDetail{
		Post:     post,
		Comments: comments,
		Weather:  weather,
	}, nil
}

// CreatePost persists a new skatepark and a post referencing it in one
// transaction, so a half-created pair is never listable.
func (s *PostService) CreatePost(authorID uint, postForm *models.PostForm, parkForm *models.SkateparkForm) (*models.Post, error) {
	park := &models.Skatepark{
		Name:       parkForm.Name,
		Prefecture: parkForm.Prefecture,
		City:       parkForm.City,
		Image:      parkForm.Image,
	}
	post := &models.Post{
		AuthorID: authorID,
		Body:     postForm.Body,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(park).Error; err != nil {
			return fmt.Errorf("create skatepark: %w", err)
		}
		post.SkateparkID = park.ID
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	post.Skatepark = *park
	return post, nil
}

// DeletePost removes a post if the requester is its author. Comments
// go with it via the foreign key cascade.
func (s *PostService) DeletePost(id, requesterID uint) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return ErrNotOwner
	}

	return s.db.Delete(&models.Post{}, post.ID).Error
}
