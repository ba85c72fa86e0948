package models

import (
	"time"
)

type News struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:50" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

type PaginatedNewsResponse struct {
	Data       []News `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
	Author  string `json:"author,omitempty"`
}

type UpdateNewsRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
}
