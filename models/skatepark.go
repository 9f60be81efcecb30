package models

import (
	"fmt"
	"time"
)

// Skatepark is the venue a post is about. One row is created per post
// and never shared between posts.
type Skatepark struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null;size:50"`
	Prefecture string    `json:"prefecture" gorm:"not null;size:4"`
	City       string    `json:"city" gorm:"not null;size:10"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Skatepark) String() string {
	return fmt.Sprintf("%s(%s)", s.Name, s.Prefecture)
}

type SkateparkForm struct {
	Name       string `form:"name" binding:"required,max=50"`
	Prefecture string `form:"prefecture" binding:"required,max=4,prefecture"`
	City       string `form:"city" binding:"required,max=10"`
	// Image is the stored path of the uploaded photo, filled in by the
	// controller after saving the multipart file; it is not bound from
	// the form.
	Image string `form:"-"`
}
