package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Renders every page of a PDF to PNG so a scale run can be checked
// visually against the original.
func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	outDir := flag.String("out", "", "Output directory for page images (default: <file>-preview)")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	dir := *outDir
	if dir == "" {
		dir = strings.TrimSuffix(*pdfPath, filepath.Ext(*pdfPath)) + "-preview"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	doc, err := fitz.New(*pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		bounds, err := doc.Bound(pageNum)
		if err != nil {
			fmt.Printf("Error getting bounds for page %d: %v\n", pageNum, err)
			os.Exit(1)
		}
		fmt.Printf("Page %d: %d x %d px\n", pageNum+1, bounds.Dx(), bounds.Dy())

		img, err := doc.Image(pageNum)
		if err != nil {
			fmt.Printf("Error rendering page %d: %v\n", pageNum, err)
			os.Exit(1)
		}

		imagePath := filepath.Join(dir, fmt.Sprintf("page_%03d.png", pageNum+1))
		f, err := os.Create(imagePath)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", imagePath, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			fmt.Printf("Error encoding %s: %v\n", imagePath, err)
			os.Exit(1)
		}
		f.Close()
	}

	fmt.Printf("Wrote %d page images to %s\n", doc.NumPage(), dir)
}
