package musicscan

import "time"

// Options configures a music scan.
type Options struct {
	// Path is the root directory to scan.
	Path string
}

// Result holds the aggregates of one completed scan.
type Result struct {
	// Folders maps each top-level subfolder name to the number of music
	// files found anywhere beneath it. For a root without subdirectories
	// it holds a single entry keyed by the root's own basename.
	Folders map[string]int
	// Extensions maps every catalog extension to its count. Extensions
	// never seen during the scan stay at zero.
	Extensions map[string]int
	// Total is the number of music files found in the whole tree.
	Total int
	// Errors is the number of filesystem entries that could not be read.
	Errors int64
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}

// ProgressKind identifies the stage a Progress event reports.
type ProgressKind int

const (
	// ScanBegin is emitted once after the root has been enumerated.
	// Count carries the number of top-level subfolders (0 for a flat root).
	ScanBegin ProgressKind = iota
	// FolderBegin is emitted when a subfolder walk starts.
	FolderBegin
	// FolderUpdate is emitted each time a subfolder count crosses a
	// multiple of ProgressEvery.
	FolderUpdate
	// FolderDone is emitted once per subfolder with its final count.
	FolderDone
	// ScanDenied is emitted when the root itself cannot be read; the scan
	// ends immediately with empty aggregates.
	ScanDenied
)

// Progress describes the state of a running scan. Events are delivered in
// order, one at a time; the hook never runs concurrently with itself.
type Progress struct {
	// Kind is the event type.
	Kind ProgressKind
	// Folder is the subfolder the event refers to. Empty for ScanBegin.
	Folder string
	// Count is the number of music files found so far. For ScanBegin it is
	// the number of top-level subfolders instead.
	Count int
	// Cumulative is the running total across all subfolders processed,
	// including this one. Set on FolderDone only.
	Cumulative int
	// Rate is files counted per second of wall-clock time in this
	// subfolder. Zero when no time has elapsed yet.
	Rate float64
}

// tally accumulates counts during a scan. The walk is sequential, so no
// locking is needed.
type tally struct {
	folders    map[string]int
	extensions map[string]int
	total      int
	cumulative int
	errors     int64
}

// newTally creates a tally with every catalog extension pre-seeded to zero,
// so unused extensions still show up in the final report.
func newTally() *tally {
	t := &tally{
		folders:    make(map[string]int),
		extensions: make(map[string]int, len(Catalog)),
	}

	for ext := range Catalog {
		t.extensions[ext] = 0
	}

	return t
}

// match records one music file with the given catalog extension.
func (t *tally) match(ext string) {
	t.total++
	t.extensions[ext]++
}

// closeFolder records the final count for a subfolder and returns the new
// cumulative total.
func (t *tally) closeFolder(name string, count int) int {
	t.folders[name] = count
	t.cumulative += count

	return t.cumulative
}

// finalize produces the Result from the collected counts.
func (t *tally) finalize(elapsed time.Duration) *Result {
	return &Result{
		Folders:    t.folders,
		Extensions: t.extensions,
		Total:      t.total,
		Errors:     t.errors,
		Elapsed:    elapsed,
	}
}
