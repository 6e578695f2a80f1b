package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/pdfscale/pkg/logger"
	"github.com/kpauljoseph/pdfscale/pkg/models"
)

// DirectoryScanner walks a directory tree collecting PDF files for
// batch scaling.
type DirectoryScanner struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{logger: log}
}

// FindPDFs returns every *.pdf under dir, in walk order. Files that
// already carry the given output suffix are skipped so a rerun does not
// rescale its own output. An empty result is an error.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir, outputSuffix string) ([]models.PDFFile, error) {
	var pdfs []models.PDFFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if outputSuffix != "" && strings.HasSuffix(base, outputSuffix) {
			s.logger.Debug("Skipping previous output: %s", path)
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("error resolving path %s: %w", path, err)
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		pdfs = append(pdfs, models.PDFFile{
			AbsolutePath: absPath,
			RelativePath: relPath,
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}
