package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfscale/internal/config"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(tempDir, "pdfscale.yaml")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("loads all fields", func() {
		path := writeConfig(`
default_format: Letter
output_suffix: "-letter"
threshold_pt: 2.5
`)
		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DefaultFormat).To(Equal("Letter"))
		Expect(cfg.OutputSuffix).To(Equal("-letter"))
		Expect(cfg.ThresholdPt).To(Equal(2.5))
	})

	It("fills defaults for missing fields", func() {
		path := writeConfig(`default_format: A4`)
		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DefaultFormat).To(Equal("A4"))
		Expect(cfg.OutputSuffix).To(Equal("-scaled"))
		Expect(cfg.ThresholdPt).To(Equal(1.0))
	})

	It("rejects a non-positive threshold", func() {
		path := writeConfig(`threshold_pt: -3`)
		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ThresholdPt).To(Equal(1.0))
	})

	It("errors on a missing file", func() {
		_, err := config.Load(filepath.Join(tempDir, "nope.yaml"))
		Expect(err).To(HaveOccurred())
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("errors on malformed YAML", func() {
		path := writeConfig("default_format: [unterminated")
		_, err := config.Load(path)
		Expect(err).To(HaveOccurred())
	})

	It("has sensible zero-config defaults", func() {
		cfg := config.Default()
		Expect(cfg.DefaultFormat).To(BeEmpty())
		Expect(cfg.OutputSuffix).To(Equal("-scaled"))
		Expect(cfg.ThresholdPt).To(Equal(1.0))
	})
})
