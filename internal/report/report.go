package report

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"icon-scraper/internal/extract"
)

// Summary counts what an extraction produced
type Summary struct {
	Total      int
	Unique     int
	Duplicates int
}

// Summarize counts total, unique and duplicate tokens
func Summarize(icons []string) Summary {
	set := extract.Set(icons)
	dups := set.Duplicates()
	return Summary{
		Total:      len(set),
		Unique:     len(set) - dups,
		Duplicates: dups,
	}
}

// Banner prints a section heading
func Banner(w io.Writer, title string) {
	fmt.Fprintf(w, "========== %s ==========\n", title)
}

// PrintPreview prints the first n icons as a numbered list
func PrintPreview(w io.Writer, icons []string, n int) {
	if n <= 0 || len(icons) == 0 {
		return
	}
	shown := min(n, len(icons))

	fmt.Fprintf(w, "First %d icons:\n", shown)
	for i, icon := range icons[:shown] {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, icon)
	}
	if len(icons) > shown {
		fmt.Fprintf(w, "  ... and %d more\n", len(icons)-shown)
	}
}

// PrintStatistics compares the extracted count with the count the page
// advertises. A non-positive expected count only prints the total.
func PrintStatistics(w io.Writer, total, expected int) {
	fmt.Fprintln(w)
	Banner(w, "Statistics")
	fmt.Fprintf(w, "Total icons: %d\n", total)
	if expected <= 0 {
		return
	}
	fmt.Fprintf(w, "Expected (from page header): %d\n", expected)
	fmt.Fprintf(w, "Difference: %d\n", total-expected)

	if total < expected {
		fmt.Fprintln(w, "\n⚠️  Note: Some icons might be missing from the scrape.")
		fmt.Fprintln(w, "The page structure might have changed or icons are loaded dynamically.")
	}
}

// PrintSummary prints the counts from Summarize
func PrintSummary(w io.Writer, name string, s Summary) {
	fmt.Fprintf(w, "📦 %s\n", name)
	fmt.Fprintf(w, "   Total: %d\n", s.Total)
	fmt.Fprintf(w, "   Unique: %d\n", s.Unique)
	fmt.Fprintf(w, "   Duplicates: %d\n", s.Duplicates)
}

// Sample picks up to n distinct icons at random. Positions are distinct, so
// duplicated tokens may still repeat.
func Sample(icons []string, n int, rng *rand.Rand) []string {
	if n > len(icons) {
		n = len(icons)
	}
	if n <= 0 {
		return []string{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(icons))[:n] {
		out = append(out, icons[i])
	}
	return out
}

// PrintSample prints a random sample of icons as bullets
func PrintSample(w io.Writer, icons []string, n int, rng *rand.Rand) {
	sample := Sample(icons, n, rng)
	if len(sample) == 0 {
		return
	}
	fmt.Fprintln(w, "\nRandom sample of icons:")
	for _, icon := range sample {
		fmt.Fprintf(w, "  • %s\n", icon)
	}
}

// Rule prints a horizontal separator
func Rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("=", width))
}
