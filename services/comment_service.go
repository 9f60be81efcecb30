package services

import (
	"errors"
	"fmt"

	"skatelog/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create appends one comment to a post, attributed to the author.
func (s *CommentService) Create(postID, authorID uint, form *models.CommentForm) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Body:     form.Body,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// CountByPost reports how many comments a post has.
func (s *CommentService) CountByPost(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
