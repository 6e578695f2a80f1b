package pdf_test

import (
	"bytes"
	"fmt"
	"os"

	. "github.com/onsi/gomega"
)

// testPDFOpts controls optional page dict entries of the fixture.
type testPDFOpts struct {
	userUnit  float64
	cropBox   bool
	bleedBox  bool
	noContent bool
}

// writeTestPDF writes a minimal single-page PDF with the given media
// box, tracking byte offsets so the xref table is exact.
func writeTestPDF(path string, width, height float64) {
	writeTestPDFOpts(path, width, height, testPDFOpts{})
}

func writeTestPDFOpts(path string, width, height float64, opts testPDFOpts) {
	content := "0 0 m 100 100 l S"

	pageEntries := fmt.Sprintf("/Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >>",
		width, height)
	if !opts.noContent {
		pageEntries += " /Contents 4 0 R"
	}
	if opts.cropBox {
		pageEntries += fmt.Sprintf(" /CropBox [0 0 %.2f %.2f]", width, height)
	}
	if opts.bleedBox {
		pageEntries += fmt.Sprintf(" /BleedBox [0 0 %.2f %.2f]", width, height)
	}
	if opts.userUnit > 0 {
		pageEntries += fmt.Sprintf(" /UserUnit %.2f", opts.userUnit)
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		fmt.Sprintf("3 0 obj\n<< %s >>\nendobj\n", pageEntries),
	}
	if !opts.noContent {
		objects = append(objects, fmt.Sprintf(
			"4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			len(content), content))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		buf.WriteString(obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	Expect(os.WriteFile(path, buf.Bytes(), 0644)).To(Succeed())
}
