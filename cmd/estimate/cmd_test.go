package estimate_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/montecarlo-framework/monty/cmd/estimate"
)

func TestEstimate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Estimate Suite")
}

func runEstimate(stdin string, args ...string) (string, error) {
	cmd := estimate.NewEstimateCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("Estimate", func() {
	It("should run the requested number of trials", func() {
		out, err := runEstimate("", "10", "--seed", "42")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("Solving 12-Queens problem..."))
		Expect(out).To(ContainSubstring("Trial 1: "))
		Expect(out).To(ContainSubstring("Trial 10: "))
		Expect(out).ToNot(ContainSubstring("Trial 11: "))
		Expect(out).To(ContainSubstring("Statistics over 10 trials:"))
		Expect(out).To(ContainSubstring("Standard deviation:"))
	})

	It("should be reproducible under a fixed seed", func() {
		first, err := runEstimate("", "25", "--seed", "7")
		Expect(err).ToNot(HaveOccurred())
		second, err := runEstimate("", "25", "--seed", "7")
		Expect(err).ToNot(HaveOccurred())

		// Trial lines are deterministic; the timing block is not.
		Expect(trialLines(first)).To(Equal(trialLines(second)))
	})

	It("should prompt for the trial count when the argument is omitted", func() {
		out, err := runEstimate("5\n", "--seed", "1")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("Enter number of Monte Carlo trials: "))
		Expect(out).To(ContainSubstring("Trial 5: "))
	})

	It("should honor the size flag", func() {
		out, err := runEstimate("", "3", "--size", "1", "--seed", "1")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("Solving 1-Queens problem..."))
		// Every size-1 trial succeeds with the invariant cost.
		Expect(out).To(ContainSubstring("Trial 1: Solutions: 1 - Operations: 3"))
		Expect(out).To(ContainSubstring("Trial 3: Solutions: 1 - Operations: 3"))
	})

	It("should reject a non-numeric trial count", func() {
		_, err := runEstimate("", "nope")
		Expect(err).To(HaveOccurred())
	})

	It("should reject a non-positive trial count", func() {
		_, err := runEstimate("", "0")
		Expect(err).To(HaveOccurred())
		_, err = runEstimate("", "-3")
		Expect(err).To(HaveOccurred())
	})

	It("should reject a non-positive board size", func() {
		_, err := runEstimate("", "1", "--size", "0")
		Expect(err).To(HaveOccurred())
	})
})

func trialLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Trial ") {
			lines = append(lines, line)
		}
	}
	return lines
}
