package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Body      string    `json:"body" gorm:"not null;size:300"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentForm struct {
	Body string `form:"body" binding:"required,max=300"`
}
