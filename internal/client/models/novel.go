package models

import (
	"net/url"
	"time"
)

// NovelStatus is the publication state of a novel.
type NovelStatus string

const (
	StatusOngoing   NovelStatus = "ONGOING"
	StatusCompleted NovelStatus = "COMPLETED"
	StatusHiatus    NovelStatus = "HIATUS"
)

type Novel struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Author        string      `json:"author"`
	Description   string      `json:"description"`
	CoverImage    string      `json:"coverImage"`
	Genre         string      `json:"genre"`
	Status        NovelStatus `json:"status"`
	TotalChapters int         `json:"totalChapters"`
	TotalViews    int64       `json:"totalViews"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// NovelStats is the per-novel aggregate returned by /novels/{id}/stats.
type NovelStats struct {
	TotalViews    int64   `json:"totalViews"`
	TotalChapters int     `json:"totalChapters"`
	AvgRating     float64 `json:"avgRating"`
	TotalReviews  int     `json:"totalReviews"`
}

type CreateNovelPayload struct {
	Title       string      `json:"title" validate:"required"`
	Author      string      `json:"author" validate:"required"`
	Description string      `json:"description" validate:"required"`
	CoverImage  string      `json:"coverImage" validate:"omitempty,url"`
	Genre       string      `json:"genre" validate:"required"`
	Status      NovelStatus `json:"status" validate:"required,oneof=ONGOING COMPLETED HIATUS"`
}

// UpdateNovelPayload carries a partial update; nil fields are left unchanged
// by the server.
type UpdateNovelPayload struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=1"`
	Author      *string      `json:"author,omitempty" validate:"omitempty,min=1"`
	Description *string      `json:"description,omitempty" validate:"omitempty,min=1"`
	CoverImage  *string      `json:"coverImage,omitempty" validate:"omitempty,url"`
	Genre       *string      `json:"genre,omitempty" validate:"omitempty,min=1"`
	Status      *NovelStatus `json:"status,omitempty" validate:"omitempty,oneof=ONGOING COMPLETED HIATUS"`
}

// NovelQuery shapes the query string for novel list endpoints.
type NovelQuery struct {
	Page   int
	Limit  int
	Search string
	Status NovelStatus
	SortBy string
	Order  string
}

// Values builds url.Values from the set fields; zero values are omitted.
func (q NovelQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	setString(v, "search", q.Search)
	setString(v, "status", string(q.Status))
	setString(v, "sortBy", q.SortBy)
	setString(v, "order", q.Order)
	return v
}
