package pdf

import (
	"context"

	"github.com/kpauljoseph/pdfscale/pkg/models"
)

type DocumentScaler interface {
	ScaleDocument(ctx context.Context, pdfPath string) (*models.ScaleResult, error)
}
