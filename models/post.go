package models

import "time"

type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	SkateparkID uint      `json:"skatepark_id" gorm:"not null"`
	Skatepark   Skatepark `json:"skatepark,omitempty" gorm:"foreignKey:SkateparkID"`
	Body        string    `json:"body" gorm:"not null;size:300"`
	CreatedAt   time.Time `json:"created_at"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// String returns the first 50 runes of the body.
func (p *Post) String() string {
	runes := []rune(p.Body)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes)
}

type PostForm struct {
	Body string `form:"body" binding:"required,max=300"`
}
