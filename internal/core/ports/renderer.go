package ports

import (
	"io"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// ChartRenderer draws pages as self-contained HTML documents.
type ChartRenderer interface {
	RenderPage(w io.Writer, page domain.Page) error
	RenderDashboard(w io.Writer, pages []domain.Page) error
}
