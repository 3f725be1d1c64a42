package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/musictools/musicscan/internal/musicscan"
)

const (
	// columnPadding is the extra width added to the widest name in a table.
	columnPadding = 2
	// minExtensionWidth keeps the extension column readable when every
	// extension is short.
	minExtensionWidth = 10
	// ruleWidth is the width of the horizontal rules between report sections.
	ruleWidth = 70
	// countColumn and percentColumn are the widths of the numeric columns.
	countColumn   = 12
	percentColumn = 10
)

// percent returns count as a percentage of total, 0 when total is 0.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return 100 * float64(count) / float64(total)
}

// tableHeader writes the shared three-column header and its underline.
func tableHeader(w io.Writer, label string, width int) {
	fmt.Fprintf(w, "%-*s | %*s | %*s\n", width, label, countColumn, "Music Files", percentColumn, "% of Total")
	fmt.Fprintln(w, strings.Repeat("-", width)+"+"+strings.Repeat("-", countColumn+2)+"+"+strings.Repeat("-", percentColumn+2))
}

// tableRow writes one name/count/percentage row.
func tableRow(w io.Writer, name string, width, count, total int) {
	fmt.Fprintf(w, "%-*s | %*s | %*.2f%%\n",
		width, name, countColumn, humanize.Comma(int64(count)), percentColumn-1, percent(count, total))
}

// PrintReport writes the by-subfolder and by-extension tables followed by
// the total and elapsed-time summary.
//
//nolint:forbidigo // This function prints the report to the console.
func PrintReport(res *musicscan.Result, w io.Writer) {
	printFolderTable(res, w)
	printExtensionTable(res, w)

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "Total music files: %s\n", humanize.Comma(int64(res.Total)))
	fmt.Fprintf(w, "Scan completed in %.2f seconds\n", res.Elapsed.Seconds())
}

// printFolderTable writes one row per subfolder, sorted by count descending.
func printFolderTable(res *musicscan.Result, w io.Writer) {
	fmt.Fprintln(w, "\nMusic Files Count by Top Subfolder:")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	width := 0
	names := make([]string, 0, len(res.Folders))

	for name := range res.Folders {
		names = append(names, name)

		if len(name) > width {
			width = len(name)
		}
	}

	width += columnPadding

	sort.Slice(names, func(i, j int) bool {
		if res.Folders[names[i]] != res.Folders[names[j]] {
			return res.Folders[names[i]] > res.Folders[names[j]]
		}

		return names[i] < names[j]
	})

	tableHeader(w, "Subfolder", width)

	for _, name := range names {
		tableRow(w, name, width, res.Folders[name], res.Total)
	}
}

// printExtensionTable writes extensions with matches first (count
// descending), then the unused remainder of the catalog alphabetically, so
// what was found always reads before what was absent.
func printExtensionTable(res *musicscan.Result, w io.Writer) {
	fmt.Fprintln(w, "\nMusic Files Count by Extension:")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	width := minExtensionWidth

	var nonZero, zero []string

	for ext, count := range res.Extensions {
		if len(ext) > width {
			width = len(ext)
		}

		if count > 0 {
			nonZero = append(nonZero, ext)
		} else {
			zero = append(zero, ext)
		}
	}

	width += columnPadding

	sort.Slice(nonZero, func(i, j int) bool {
		if res.Extensions[nonZero[i]] != res.Extensions[nonZero[j]] {
			return res.Extensions[nonZero[i]] > res.Extensions[nonZero[j]]
		}

		return nonZero[i] < nonZero[j]
	})
	sort.Strings(zero)

	tableHeader(w, "Extension", width)

	for _, ext := range nonZero {
		tableRow(w, ext, width, res.Extensions[ext], res.Total)
	}

	for _, ext := range zero {
		tableRow(w, ext, width, 0, res.Total)
	}
}
