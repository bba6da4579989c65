package models

// DashboardStats is the aggregate returned by /admin/stats.
type DashboardStats struct {
	TotalNovels   int   `json:"totalNovels"`
	TotalChapters int   `json:"totalChapters"`
	TotalUsers    int   `json:"totalUsers"`
	TotalViews    int64 `json:"totalViews"`
}
