package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musictools/musicscan/internal/musicscan"
)

// result builds a Result with the full catalog pre-seeded, mirroring what a
// real scan hands to the reporter.
func result(folders map[string]int, extensions map[string]int, total int) *musicscan.Result {
	res := &musicscan.Result{
		Folders:    folders,
		Extensions: make(map[string]int, len(musicscan.Catalog)),
		Total:      total,
		Elapsed:    1500 * time.Millisecond,
	}

	for ext := range musicscan.Catalog {
		res.Extensions[ext] = 0
	}

	for ext, count := range extensions {
		res.Extensions[ext] = count
	}

	return res
}

func render(res *musicscan.Result) string {
	var buf bytes.Buffer

	PrintReport(res, &buf)

	return buf.String()
}

func TestPrintReport_FolderTableSortedByCountDescending(t *testing.T) {
	out := render(result(
		map[string]int{"Ambient": 2, "Classical": 8, "Rock": 5},
		map[string]int{".mp3": 15},
		15,
	))

	classical := strings.Index(out, "Classical")
	rock := strings.Index(out, "Rock")
	ambient := strings.Index(out, "Ambient")

	require.Positive(t, classical)
	assert.Less(t, classical, rock)
	assert.Less(t, rock, ambient)
}

func TestPrintReport_Percentages(t *testing.T) {
	out := render(result(
		map[string]int{"A": 3, "B": 1},
		map[string]int{".mp3": 4},
		4,
	))

	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "25.00%")
	assert.Contains(t, out, "100.00%")
}

func TestPrintReport_ZeroTotalAvoidsDivision(t *testing.T) {
	out := render(result(map[string]int{"Empty": 0}, nil, 0))

	assert.Contains(t, out, "0.00%")
	assert.NotContains(t, out, "NaN")
	assert.Contains(t, out, "Total music files: 0")
}

func TestPrintReport_ExtensionOrdering(t *testing.T) {
	out := render(result(
		map[string]int{"A": 13},
		map[string]int{".mp3": 10, ".flac": 3},
		13,
	))

	mp3 := strings.Index(out, ".mp3")
	flac := strings.Index(out, ".flac")

	require.Positive(t, mp3)
	assert.Less(t, mp3, flac, "non-zero extensions sort by count descending")

	// The zero-count tail is alphabetical and follows every non-zero row.
	zeroTail := []string{".aac", ".aif", ".aiff", ".ape", ".dff", ".dsf", ".m4a", ".oga", ".ogg", ".wav"}
	prev := flac

	for _, ext := range zeroTail {
		idx := strings.Index(out, ext+" ")
		if idx < 0 {
			idx = strings.Index(out, ext)
		}
		require.Positive(t, idx, ext)
		assert.Greater(t, idx, prev, "%s must come after the previous row", ext)
		prev = idx
	}
}

func TestPrintReport_ThousandsSeparatorsAndSummary(t *testing.T) {
	out := render(result(
		map[string]int{"Library": 1234567},
		map[string]int{".flac": 1234567},
		1234567,
	))

	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "Total music files: 1,234,567")
	assert.Contains(t, out, "Scan completed in 1.50 seconds")
}

func TestPrintReport_ColumnWidthFollowsLongestName(t *testing.T) {
	long := "A Very Long Subfolder Name Indeed"
	out := render(result(
		map[string]int{long: 1, "B": 0},
		map[string]int{".mp3": 1},
		1,
	))

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "B ") {
			// Short names are padded out to the longest name plus two.
			assert.Contains(t, line, strings.Repeat(" ", len(long)+1))
		}
	}

	assert.Contains(t, out, long+"   |")
}

func TestPercent(t *testing.T) {
	assert.Zero(t, percent(5, 0))
	assert.InDelta(t, 50.0, percent(1, 2), 0.0001)
	assert.InDelta(t, 100.0, percent(7, 7), 0.0001)
}
