package bargeh

import (
	"context"

	"course-terms/internal/domain"
)

// Provider adapts the Client into the providers.CourseSource interface.
type Provider struct {
	C        *Client
	PageSize int
	MaxPages int // <=0 means all
}

func (p Provider) Name() string { return "api" }

func (p Provider) ListCourses(ctx context.Context) ([]domain.CourseRecord, error) {
	if p.PageSize <= 0 {
		p.PageSize = 100
	}
	return p.C.ListCourses(ctx, p.PageSize, p.MaxPages)
}
