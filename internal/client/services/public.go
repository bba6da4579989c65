package services

import (
	"context"
	"fmt"

	"github.com/thentamil/novelreader/internal/client/api"
	"github.com/thentamil/novelreader/internal/client/models"
)

// PublicService covers the reader-facing reads. No credential is required,
// though the dispatcher still attaches one when present.
type PublicService interface {
	ListNovels(ctx context.Context, q models.NovelQuery) (*models.Paginated[models.Novel], error)
	GetNovel(ctx context.Context, id string) (*models.Novel, error)
	ListChapters(ctx context.Context, q models.ChapterQuery) (*models.Paginated[models.Chapter], error)
	GetChapter(ctx context.Context, id string) (*models.Chapter, error)
	ChapterNavigation(ctx context.Context, id string) (*models.ChapterNavigation, error)
}

type publicService struct {
	client api.Client
}

func NewPublicService(client api.Client) PublicService {
	return &publicService{client: client}
}

func (s *publicService) ListNovels(ctx context.Context, q models.NovelQuery) (*models.Paginated[models.Novel], error) {
	var out models.Paginated[models.Novel]
	if err := s.client.Get(ctx, "/novels", q.Values(), &out, "get-novels"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *publicService) GetNovel(ctx context.Context, id string) (*models.Novel, error) {
	var out models.Novel
	if err := s.client.Get(ctx, "/novels/"+id, nil, &out, fmt.Sprintf("get-novel-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *publicService) ListChapters(ctx context.Context, q models.ChapterQuery) (*models.Paginated[models.Chapter], error) {
	var out models.Paginated[models.Chapter]
	if err := s.client.Get(ctx, "/chapters", q.Values(), &out, "get-chapters"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *publicService) GetChapter(ctx context.Context, id string) (*models.Chapter, error) {
	var out models.Chapter
	if err := s.client.Get(ctx, "/chapters/"+id, nil, &out, fmt.Sprintf("get-chapter-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *publicService) ChapterNavigation(ctx context.Context, id string) (*models.ChapterNavigation, error) {
	var out models.ChapterNavigation
	if err := s.client.Get(ctx, "/chapters/"+id+"/navigation", nil, &out, fmt.Sprintf("get-nav-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}
