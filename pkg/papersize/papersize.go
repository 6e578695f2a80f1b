// Package papersize resolves paper format names to page dimensions in
// PDF points. It knows the ISO 216 A/B/C series, the common US formats
// and custom "<width>x<height>" sizes given in millimetres.
package papersize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MillimetresPerInch converts between metric and imperial sizes.
	MillimetresPerInch = 25.4

	// PointsPerInch is the PDF user space resolution (1 pt = 1/72 in).
	PointsPerInch = 72.0
)

var ErrUnsupportedFormat = errors.New("unsupported paper format")

// Format is a paper format with dimensions in PDF points, portrait
// orientation (Width <= Height for all named formats).
type Format struct {
	Name   string
	Width  float64
	Height float64
}

func (f Format) String() string {
	return fmt.Sprintf("%s (%.2f x %.2f pt)", f.Name, f.Width, f.Height)
}

// PointsFromMillimetres converts a length in mm to PDF points.
func PointsFromMillimetres(mm float64) float64 {
	return mm / MillimetresPerInch * PointsPerInch
}

// PointsFromInches converts a length in inches to PDF points.
func PointsFromInches(in float64) float64 {
	return in * PointsPerInch
}

// ISO 216 series exponents. Sizes follow from
//
//	height = 2^(exp - n/2) * 1000 mm
//	width  = 2^(exp - (n+1)/2) * 1000 mm
//
// with results truncated to whole millimetres, which reproduces the
// standard tables (A4 = 210 x 297 mm, B4 = 250 x 353 mm, ...).
var isoSeriesExponent = map[byte]float64{
	'a': 1.0 / 4.0,
	'b': 1.0 / 2.0,
	'c': 3.0 / 8.0,
}

const maxISOSize = 10

func isoFormat(series byte, size int) (Format, bool) {
	exp, ok := isoSeriesExponent[series]
	if !ok || size < 0 || size > maxISOSize {
		return Format{}, false
	}

	heightMM := math.Floor(math.Exp2(exp-float64(size)/2) * 1000)
	widthMM := math.Floor(math.Exp2(exp-float64(size+1)/2) * 1000)

	return Format{
		Name:   fmt.Sprintf("%c%d", series-'a'+'A', size),
		Width:  PointsFromMillimetres(widthMM),
		Height: PointsFromMillimetres(heightMM),
	}, true
}

type usFormat struct {
	name   string
	inches [2]float64
}

// US formats, dimensions in inches.
var usFormats = map[string]usFormat{
	"letter":  {"Letter", [2]float64{8.5, 11}},
	"legal":   {"Legal", [2]float64{8.5, 14}},
	"tabloid": {"Tabloid", [2]float64{11, 17}},
	"ledger":  {"Ledger", [2]float64{17, 11}},
}

// Alternative names for entries in usFormats.
var synonyms = map[string]string{
	"us letter": "letter",
	"us-letter": "letter",
	"us legal":  "legal",
	"us-legal":  "legal",
	"ansi a":    "letter",
	"ansi b":    "tabloid",
}

// isoPrefixes are stripped before trying an ISO 216 name, so "DIN A4",
// "iso216 b5" and plain "a4" all resolve.
var isoPrefixes = []string{"din-", "din", "iso 216", "iso216", ""}

// Parse resolves a format name to its dimensions. Matching is
// case-insensitive and ignores surrounding whitespace. Supported inputs:
// ISO 216 names with optional DIN/ISO prefix ("A4", "din-b5"), US names
// and their synonyms ("Letter", "us legal"), and custom "WxH" sizes in
// millimetres ("210x297").
func Parse(name string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return Format{}, fmt.Errorf("%w: empty name", ErrUnsupportedFormat)
	}

	if f, ok := parseCustom(s); ok {
		return f, nil
	}

	for _, prefix := range isoPrefixes {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		iso := strings.TrimSpace(s[len(prefix):])
		if len(iso) < 2 {
			continue
		}
		size, err := strconv.Atoi(iso[1:])
		if err != nil {
			continue
		}
		if f, ok := isoFormat(iso[0], size); ok {
			return f, nil
		}
	}

	if canonical, ok := synonyms[s]; ok {
		s = canonical
	}
	if us, ok := usFormats[s]; ok {
		return Format{
			Name:   us.name,
			Width:  PointsFromInches(us.inches[0]),
			Height: PointsFromInches(us.inches[1]),
		}, nil
	}

	return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// parseCustom handles "<width>x<height>" in millimetres.
func parseCustom(s string) (Format, bool) {
	w, h, found := strings.Cut(s, "x")
	if !found {
		return Format{}, false
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || width <= 0 {
		return Format{}, false
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil || height <= 0 {
		return Format{}, false
	}
	return Format{
		Name:   fmt.Sprintf("%gx%gmm", width, height),
		Width:  PointsFromMillimetres(width),
		Height: PointsFromMillimetres(height),
	}, true
}

// Known returns every named format: the full ISO 216 A/B/C series plus
// the US formats. The slice is freshly allocated on each call.
func Known() []Format {
	var formats []Format
	for _, series := range []byte{'a', 'b', 'c'} {
		for size := 0; size <= maxISOSize; size++ {
			f, _ := isoFormat(series, size)
			formats = append(formats, f)
		}
	}
	for _, us := range usFormats {
		formats = append(formats, Format{
			Name:   us.name,
			Width:  PointsFromInches(us.inches[0]),
			Height: PointsFromInches(us.inches[1]),
		})
	}
	return formats
}

// ClosestTolerance is the per-axis slack used by Closest, in points.
const ClosestTolerance = 3.0

// Closest reports the named format matching the given page dimensions,
// in either orientation, within ClosestTolerance per axis.
func Closest(width, height float64) (Format, bool) {
	for _, f := range Known() {
		if matches(width, height, f) || matches(height, width, f) {
			return f, true
		}
	}
	return Format{}, false
}

func matches(w, h float64, f Format) bool {
	return math.Abs(w-f.Width) <= ClosestTolerance &&
		math.Abs(h-f.Height) <= ClosestTolerance
}
