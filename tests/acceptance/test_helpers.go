package acceptance

import (
	"bytes"
	"fmt"
	"os"
)

// WriteSamplePDF writes a minimal PDF with one page per given media
// box, with exact xref offsets so strict readers accept it.
func WriteSamplePDF(path string, pageSizes ...[2]float64) error {
	if len(pageSizes) == 0 {
		return fmt.Errorf("at least one page size required")
	}

	var objects []string
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := ""
	firstPageObj := 3
	for i := range pageSizes {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", firstPageObj+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pageSizes)))

	content := "0 0 m 100 100 l S"
	for i, size := range pageSizes {
		pageObj := firstPageObj + 2*i
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> /Contents %d 0 R >>",
			size[0], size[1], pageObj+1))
		objects = append(objects, fmt.Sprintf(
			"<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, body := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	return os.WriteFile(path, buf.Bytes(), 0644)
}
