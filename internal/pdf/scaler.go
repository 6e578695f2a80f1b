package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/kpauljoseph/pdfscale/pkg/logger"
	"github.com/kpauljoseph/pdfscale/pkg/models"
	"github.com/kpauljoseph/pdfscale/pkg/papersize"
	"github.com/kpauljoseph/pdfscale/pkg/scale"
)

var ErrCorruptDocument = errors.New("corrupt PDF document")

// Scaler rescales every page of a PDF so it covers the target paper
// format, preserving aspect ratio. The page boxes grow by the computed
// factor and the same transform is prepended to the page content, so
// nothing is ever cropped.
type Scaler struct {
	format    papersize.Format
	suffix    string
	threshold float64
	log       *logger.Logger
}

func NewScaler(format papersize.Format, suffix string, threshold float64, log *logger.Logger) *Scaler {
	if suffix == "" {
		suffix = "-scaled"
	}
	if threshold <= 0 {
		threshold = scale.DefaultThreshold
	}
	return &Scaler{
		format:    format,
		suffix:    suffix,
		threshold: threshold,
		log:       log,
	}
}

// DeriveOutputPath inserts suffix before the extension:
// "notes.pdf" -> "notes-scaled.pdf".
func DeriveOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	if ext == "" {
		ext = ".pdf"
	}
	return base + suffix + ext
}

// ScaleDocument scales pdfPath and writes the result next to it, with
// the configured suffix inserted before the extension.
func (s *Scaler) ScaleDocument(ctx context.Context, pdfPath string) (*models.ScaleResult, error) {
	return s.ScaleDocumentTo(ctx, pdfPath, DeriveOutputPath(pdfPath, s.suffix))
}

// ScaleDocumentTo scales pdfPath into outputPath. The output is written
// to a temporary file first and renamed only when every page succeeded,
// so a failed run never leaves a partial file behind. When no page
// needs scaling, no output file is written at all.
func (s *Scaler) ScaleDocumentTo(ctx context.Context, pdfPath, outputPath string) (*models.ScaleResult, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, pdfPath, err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, pdfPath, err)
	}

	s.log.Debug("Target format: %s", s.format)

	result := &models.ScaleResult{
		InputPath:  pdfPath,
		OutputPath: outputPath,
		PageCount:  pdfCtx.PageCount,
	}

	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ps, err := s.scalePage(pdfCtx, pageNr)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}

		if ps.Skipped {
			s.log.Trace("Page %d already at target size, skipping", pageNr)
		} else {
			s.log.Debug("Page %d: %.2f x %.2f -> %.2f x %.2f (factor %.4f)",
				pageNr, ps.Original.Width, ps.Original.Height,
				ps.Scaled.Width, ps.Scaled.Height, ps.Factor)
			result.ScaledCount++
		}
		result.Pages = append(result.Pages, ps)
	}

	if !result.Changed() {
		return result, nil
	}

	if err := s.writeAtomically(pdfCtx, outputPath); err != nil {
		return nil, err
	}

	return result, nil
}

// scalePage mutates the page dict in place: it grows the page boxes by
// the computed factor and prepends the matching transform to the page
// content stream.
func (s *Scaler) scalePage(pdfCtx *model.Context, pageNr int) (models.PageScale, error) {
	pageDict, _, inh, err := pdfCtx.PageDict(pageNr, false)
	if err != nil {
		return models.PageScale{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if pageDict == nil {
		return models.PageScale{}, fmt.Errorf("%w: missing page dict", ErrCorruptDocument)
	}

	box := inh.MediaBox
	if box == nil {
		box = inh.CropBox
	}
	if box == nil {
		return models.PageScale{}, fmt.Errorf("%w: page has no media box", ErrCorruptDocument)
	}

	width := box.Width()
	height := box.Height()

	// UserUnit rescales user space; a target given in points has to be
	// expressed in the page's units before comparing.
	userUnit := pageUserUnit(pageDict)
	targetWidth := s.format.Width / userUnit
	targetHeight := s.format.Height / userUnit

	factor, err := scale.Factor(width, height, targetWidth, targetHeight)
	if err != nil {
		return models.PageScale{}, err
	}

	ps := models.PageScale{
		PageNumber: pageNr,
		Factor:     factor,
		Original:   models.PageDimensions{Width: width, Height: height},
	}

	if scale.Negligible(factor, width, height, s.threshold) {
		ps.Factor = 1.0
		ps.Scaled = ps.Original
		ps.Skipped = true
		return ps, nil
	}

	newBox := types.RectForWidthAndHeight(box.LL.X, box.LL.Y, width*factor, height*factor)
	pageDict["MediaBox"] = newBox.Array()
	for _, key := range []string{"CropBox", "BleedBox", "TrimBox", "ArtBox"} {
		if _, found := pageDict.Find(key); found {
			pageDict[key] = newBox.Array()
		}
	}

	ps.Scaled = models.PageDimensions{Width: newBox.Width(), Height: newBox.Height()}

	if err := s.transformContent(pdfCtx, pageDict, factor, box); err != nil {
		return models.PageScale{}, err
	}

	return ps, nil
}

// transformContent wraps the page content in q/Q and prepends a cm
// operator scaling uniformly about the lower-left corner of the old
// media box, which maps the old box exactly onto the new one.
func (s *Scaler) transformContent(pdfCtx *model.Context, pageDict types.Dict, factor float64, box *types.Rectangle) error {
	content, err := pdfCtx.PageContent(pageDict)
	if err != nil {
		if errors.Is(err, model.ErrNoContent) {
			// Blank page: resizing the boxes is all there is to do.
			return nil
		}
		return fmt.Errorf("%w: reading content: %v", ErrCorruptDocument, err)
	}

	dx := box.LL.X * (1 - factor)
	dy := box.LL.Y * (1 - factor)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "q %.5f 0 0 %.5f %.5f %.5f cm ", factor, factor, dx, dy)
	buf.Write(content)
	buf.WriteString(" Q ")

	streamDict, err := pdfCtx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return fmt.Errorf("creating content stream: %w", err)
	}
	if err := streamDict.Encode(); err != nil {
		return fmt.Errorf("encoding content stream: %w", err)
	}

	indRef, err := pdfCtx.IndRefForNewObject(*streamDict)
	if err != nil {
		return fmt.Errorf("registering content stream: %w", err)
	}
	pageDict["Contents"] = *indRef

	return nil
}

func (s *Scaler) writeAtomically(pdfCtx *model.Context, outputPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".pdfscale-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := api.WriteContextFile(pdfCtx, tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	// CreateTemp makes the file 0600; give the output normal permissions.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	s.log.Trace("Wrote %s", outputPath)
	return nil
}

// pageUserUnit reads the optional /UserUnit entry (points per user
// space unit, default 1.0). It is a page-level key and not inheritable.
func pageUserUnit(pageDict types.Dict) float64 {
	obj, found := pageDict.Find("UserUnit")
	if !found {
		return 1.0
	}
	switch v := obj.(type) {
	case types.Float:
		if v.Value() > 0 {
			return v.Value()
		}
	case types.Integer:
		if v.Value() > 0 {
			return float64(v.Value())
		}
	}
	return 1.0
}
