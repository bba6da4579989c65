package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/thentamil/novelreader/internal/client/api"
	"github.com/thentamil/novelreader/internal/client/models"
)

// AdminService covers the back-office operations. Every call expects an
// authenticated session with an elevated role; the server enforces the role
// and this client merely reflects the resulting 401/403.
type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	ListNovels(ctx context.Context, q models.NovelQuery) (*models.Paginated[models.Novel], error)
	GetNovel(ctx context.Context, id string) (*models.Novel, error)
	NovelStats(ctx context.Context, id string) (*models.NovelStats, error)
	CreateNovel(ctx context.Context, payload models.CreateNovelPayload) (*models.Novel, error)
	UpdateNovel(ctx context.Context, id string, payload models.UpdateNovelPayload) (*models.Novel, error)
	DeleteNovel(ctx context.Context, id string) (string, error)

	ListChapters(ctx context.Context, q models.ChapterQuery) (*models.Paginated[models.Chapter], error)
	GetChapter(ctx context.Context, id string) (*models.Chapter, error)
	CreateChapter(ctx context.Context, payload models.CreateChapterPayload) (*models.Chapter, error)
	UpdateChapter(ctx context.Context, id string, payload models.UpdateChapterPayload) (*models.Chapter, error)
	DeleteChapter(ctx context.Context, id string) (string, error)
}

type adminService struct {
	client   api.Client
	validate *validator.Validate
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client, validate: newValidator()}
}

func (s *adminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.client.Get(ctx, "/admin/stats", nil, &out, "dashboard-stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) ListNovels(ctx context.Context, q models.NovelQuery) (*models.Paginated[models.Novel], error) {
	var out models.Paginated[models.Novel]
	if err := s.client.Get(ctx, "/novels", q.Values(), &out, "admin-novels"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) GetNovel(ctx context.Context, id string) (*models.Novel, error) {
	var out models.Novel
	if err := s.client.Get(ctx, "/novels/"+id, nil, &out, fmt.Sprintf("admin-novel-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) NovelStats(ctx context.Context, id string) (*models.NovelStats, error) {
	var out models.NovelStats
	if err := s.client.Get(ctx, "/novels/"+id+"/stats", nil, &out, fmt.Sprintf("novel-stats-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) CreateNovel(ctx context.Context, payload models.CreateNovelPayload) (*models.Novel, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		return nil, err
	}

	var out models.Novel
	if err := s.client.Post(ctx, "/novels", payload, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) UpdateNovel(ctx context.Context, id string, payload models.UpdateNovelPayload) (*models.Novel, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		return nil, err
	}

	var out models.Novel
	if err := s.client.Patch(ctx, "/novels/"+id, payload, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) DeleteNovel(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := s.client.Delete(ctx, "/novels/"+id, &out, ""); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (s *adminService) ListChapters(ctx context.Context, q models.ChapterQuery) (*models.Paginated[models.Chapter], error) {
	var out models.Paginated[models.Chapter]
	if err := s.client.Get(ctx, "/chapters", q.Values(), &out, "admin-chapters"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) GetChapter(ctx context.Context, id string) (*models.Chapter, error) {
	var out models.Chapter
	if err := s.client.Get(ctx, "/chapters/"+id, nil, &out, fmt.Sprintf("admin-chapter-%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) CreateChapter(ctx context.Context, payload models.CreateChapterPayload) (*models.Chapter, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		return nil, err
	}

	var out models.Chapter
	if err := s.client.Post(ctx, "/chapters", payload, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) UpdateChapter(ctx context.Context, id string, payload models.UpdateChapterPayload) (*models.Chapter, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		return nil, err
	}

	var out models.Chapter
	if err := s.client.Patch(ctx, "/chapters/"+id, payload, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminService) DeleteChapter(ctx context.Context, id string) (string, error) {
	var out messageResponse
	if err := s.client.Delete(ctx, "/chapters/"+id, &out, ""); err != nil {
		return "", err
	}
	return out.Message, nil
}
