package papersize_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfscale/pkg/papersize"
)

var _ = Describe("Papersize", func() {
	Context("parsing named formats", func() {
		DescribeTable("Parse",
			func(name string, expectedWidth, expectedHeight float64) {
				f, err := papersize.Parse(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Width).To(BeNumerically("~", expectedWidth, 0.01))
				Expect(f.Height).To(BeNumerically("~", expectedHeight, 0.01))
			},
			// 210 x 297 mm
			Entry("A4", "A4", 595.28, 841.89),
			Entry("lowercase a4", "a4", 595.28, 841.89),
			Entry("surrounding whitespace", "  A4  ", 595.28, 841.89),
			Entry("DIN prefix", "DIN-A4", 595.28, 841.89),
			Entry("ISO 216 prefix", "iso216 a4", 595.28, 841.89),
			// 297 x 420 mm
			Entry("A3", "A3", 841.89, 1190.55),
			// 176 x 250 mm
			Entry("B5", "b5", 498.90, 708.66),
			// 229 x 324 mm
			Entry("C4", "C4", 649.13, 918.43),
			Entry("Letter", "Letter", 612.0, 792.0),
			Entry("letter synonym", "us letter", 612.0, 792.0),
			Entry("Legal", "legal", 612.0, 1008.0),
			Entry("Tabloid", "tabloid", 792.0, 1224.0),
			Entry("custom mm size", "210x297", 595.28, 841.89),
			Entry("custom mm size with fractions", "100.5x200", 284.88, 566.93),
		)

		DescribeTable("Parse failures",
			func(name string) {
				_, err := papersize.Parse(name)
				Expect(err).To(MatchError(papersize.ErrUnsupportedFormat))
			},
			Entry("empty", ""),
			Entry("unknown name", "quarto deluxe"),
			Entry("ISO size out of range", "a11"),
			Entry("unknown ISO series", "d4"),
			Entry("custom size with bad number", "210xbig"),
			Entry("custom size with negative dimension", "-210x297"),
		)

		It("reports the offending name", func() {
			_, err := papersize.Parse("B77")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("B77"))
		})
	})

	Context("format tables", func() {
		It("knows the full ISO series plus US formats", func() {
			known := papersize.Known()
			// 3 series x 11 sizes + 4 US formats
			Expect(known).To(HaveLen(37))
		})

		It("keeps named formats in portrait orientation", func() {
			for _, f := range papersize.Known() {
				if f.Name == "Ledger" {
					continue // Ledger is Tabloid rotated
				}
				Expect(f.Width).To(BeNumerically("<=", f.Height), f.Name)
			}
		})
	})

	Context("matching dimensions back to formats", func() {
		It("finds A4 for A4-ish pages", func() {
			f, ok := papersize.Closest(595.0, 842.0)
			Expect(ok).To(BeTrue())
			Expect(f.Name).To(Equal("A4"))
		})

		It("matches rotated pages", func() {
			f, ok := papersize.Closest(841.89, 595.28)
			Expect(ok).To(BeTrue())
			Expect(f.Name).To(Equal("A4"))
		})

		It("reports no match for odd sizes", func() {
			_, ok := papersize.Closest(300, 300)
			Expect(ok).To(BeFalse())
		})
	})
})
