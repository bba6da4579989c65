package models

import (
	"net/url"
	"time"
)

type Chapter struct {
	ID            string    `json:"id"`
	NovelID       string    `json:"novelId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ChapterNumber int       `json:"chapterNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ChapterRef is a lightweight reference to a sibling chapter.
type ChapterRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChapterNavigation holds the previous/next siblings of a chapter.
// Either side is nil at the start/end of a novel.
type ChapterNavigation struct {
	Previous *ChapterRef `json:"previous"`
	Next     *ChapterRef `json:"next"`
}

type CreateChapterPayload struct {
	NovelID       string `json:"novelId" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	ChapterNumber int    `json:"chapterNumber" validate:"required,gte=1"`
}

// UpdateChapterPayload carries a partial update. A chapter cannot be moved
// to another novel, so there is no NovelID field.
type UpdateChapterPayload struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Content       *string `json:"content,omitempty" validate:"omitempty,min=1"`
	ChapterNumber *int    `json:"chapterNumber,omitempty" validate:"omitempty,gte=1"`
}

// ChapterQuery shapes the query string for chapter list endpoints.
type ChapterQuery struct {
	NovelID string
	Page    int
	Limit   int
}

// Values builds url.Values from the set fields; zero values are omitted.
func (q ChapterQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "novelId", q.NovelID)
	setInt(v, "page", q.Page)
	setInt(v, "limit", q.Limit)
	return v
}
