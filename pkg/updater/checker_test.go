package updater

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Version comparison", func() {
	DescribeTable("compareVersions",
		func(v1, v2 string, expected int) {
			Expect(compareVersions(v1, v2)).To(Equal(expected))
		},
		Entry("equal", "1.2.3", "1.2.3", 0),
		Entry("patch bump", "1.2.3", "1.2.4", -1),
		Entry("minor bump", "1.2.3", "1.3.0", -1),
		Entry("major bump", "2.0.0", "1.9.9", 1),
		Entry("multi-digit minor sorts numerically", "1.9.0", "1.10.0", -1),
		Entry("multi-digit patch sorts numerically", "1.0.10", "1.0.9", 1),
		Entry("shorter version sorts first", "1.2", "1.2.1", -1),
		Entry("non-numeric component falls back to strings", "1.2.beta", "1.2.rc", -1),
	)
})
