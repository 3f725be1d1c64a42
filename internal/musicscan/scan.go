package musicscan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// ProgressEvery is the number of matches between FolderUpdate events.
const ProgressEvery = 100

// classify returns the lower-cased extension of name and whether it belongs
// to the catalog. A name without a dot has no extension, and neither does a
// dotfile whose only dot is the leading one (a file named ".mp3" is hidden,
// not music).
func classify(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || len(ext) == len(name) {
		return "", false
	}

	_, ok := Catalog[ext]

	return ext, ok
}

// rate returns count divided by elapsed seconds, or 0 when no time has
// elapsed yet.
func rate(count int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs == 0 {
		return 0
	}

	return float64(count) / secs
}

// Run scans the directory tree at opt.Path and returns aggregated music
// file counts per top-level subfolder and per catalog extension.
//
// Subfolders are walked one at a time, each to arbitrary depth, with a
// single walker. A root without subdirectories is treated as one subfolder
// unit: only its direct files are classified, non-recursively.
//
// Progress events are delivered synchronously to hook if provided. The walk
// can be cancelled via ctx. Unreadable entries are skipped and counted in
// Result.Errors; a permission failure on the root itself yields empty
// aggregates rather than an error.
func Run(ctx context.Context, opt Options, hook func(Progress)) (*Result, error) {
	if hook == nil {
		hook = func(Progress) {}
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	start := time.Now()
	counts := newTally()

	entries, err := os.ReadDir(opt.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			// Tolerated at the root: report an empty tree instead of failing.
			counts.errors++
			hook(Progress{Kind: ScanDenied})

			return counts.finalize(time.Since(start)), nil
		}

		return nil, fmt.Errorf("reading root directory %q: %w", opt.Path, err)
	}

	subdirs := make([]fs.DirEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
		}
	}

	hook(Progress{Kind: ScanBegin, Count: len(subdirs)})

	if len(subdirs) == 0 {
		return scanFlat(opt.Path, entries, counts, hook, start)
	}

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,     // One walker, one subfolder at a time
	}

	for _, subdir := range subdirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := subdir.Name()
		folderStart := time.Now()
		count := 0

		hook(Progress{Kind: FolderBegin, Folder: name})

		//nolint:varnamelen // d is standard for DirEntry
		walkErr := fastwalk.Walk(conf, filepath.Join(opt.Path, name), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				counts.errors++

				return nil //nolint:nilerr // Unreadable entries are skipped, not fatal
			}

			select {
			case <-ctx.Done():
				return context.Canceled
			default:
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			ext, ok := classify(d.Name())
			if !ok {
				return nil
			}

			counts.match(ext)

			count++
			if count%ProgressEvery == 0 {
				hook(Progress{
					Kind:   FolderUpdate,
					Folder: name,
					Count:  count,
					Rate:   rate(count, time.Since(folderStart)),
				})
			}

			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}

		hook(Progress{
			Kind:       FolderDone,
			Folder:     name,
			Count:      count,
			Cumulative: counts.closeFolder(name, count),
			Rate:       rate(count, time.Since(folderStart)),
		})
	}

	return counts.finalize(time.Since(start)), nil
}

// scanFlat handles a root without subdirectories: only its direct files are
// classified, and the root's own basename stands in as the single subfolder.
func scanFlat(root string, entries []fs.DirEntry, counts *tally, hook func(Progress), start time.Time) (*Result, error) {
	name := filepath.Base(root)

	if abs, err := filepath.Abs(root); err == nil {
		name = filepath.Base(abs)
	}

	count := 0

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		ext, ok := classify(entry.Name())
		if !ok {
			continue
		}

		counts.match(ext)
		count++
	}

	hook(Progress{
		Kind:       FolderDone,
		Folder:     name,
		Count:      count,
		Cumulative: counts.closeFolder(name, count),
		Rate:       rate(count, time.Since(start)),
	})

	return counts.finalize(time.Since(start)), nil
}
