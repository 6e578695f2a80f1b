package models

type PageDimensions struct {
	Width  float64
	Height float64
}

// PageScale records what happened to a single page during a scale run.
type PageScale struct {
	PageNumber int
	Factor     float64
	Original   PageDimensions
	Scaled     PageDimensions
	Skipped    bool
}

// ScaleResult summarizes one document transformation.
type ScaleResult struct {
	InputPath   string
	OutputPath  string
	PageCount   int
	ScaledCount int
	Pages       []PageScale
}

// Changed reports whether any page actually got rescaled. When false,
// no output file was written.
func (r *ScaleResult) Changed() bool {
	return r.ScaledCount > 0
}

// PDFFile is a PDF found by the directory scanner.
type PDFFile struct {
	AbsolutePath string
	RelativePath string
}
