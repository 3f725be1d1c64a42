package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/musictools/musicscan/internal/musicscan"
)

const (
	// folderColumn is the width of the subfolder column in the live scan rows.
	folderColumn = 50
	// scanRuleWidth is the width of the rule under the live scan header.
	scanRuleWidth = 90
)

//nolint:forbidigo // This function prints scan progress to the console.
func logic(options musicscan.Options) error {
	fmt.Printf("Selected folder: %s\n", options.Path)
	fmt.Printf("Scanning for files with extensions: %s\n", strings.Join(musicscan.Extensions(), ", "))
	fmt.Println(strings.Repeat("-", ruleWidth))

	// In-place redraw only makes sense on a terminal.
	redraw := isatty.IsTerminal(os.Stderr.Fd())

	flat := false

	hook := func(p musicscan.Progress) {
		switch p.Kind {
		case musicscan.ScanDenied:
			fmt.Printf("Permission denied: cannot access %s\n", options.Path)
		case musicscan.ScanBegin:
			if p.Count == 0 {
				flat = true

				return
			}

			fmt.Printf("Scanning %d top-level subdirectories in %s...\n", p.Count, options.Path)
			fmt.Printf("%-*s | %-8s | %-10s | %-15s\n",
				folderColumn, "Subfolder", "Files", "Cumulative", "Speed (files/sec)")
			fmt.Println(strings.Repeat("-", scanRuleWidth))
		case musicscan.FolderBegin:
			if redraw {
				fmt.Fprintf(os.Stderr, "\r\033[2KScanning %s...", p.Folder)
			}
		case musicscan.FolderUpdate:
			if redraw {
				fmt.Fprintf(os.Stderr, "\r\033[2KScanning %s... Found %d music files (%.1f files/sec)",
					p.Folder, p.Count, p.Rate)
			}
		case musicscan.FolderDone:
			if redraw {
				fmt.Fprint(os.Stderr, "\r\033[2K")
			}

			if flat {
				fmt.Printf("Found %d music files in %s\n", p.Count, p.Folder)

				return
			}

			fmt.Printf("%-*s | %-8s | %-10s | %-15.1f\n",
				folderColumn, p.Folder,
				humanize.Comma(int64(p.Count)), humanize.Comma(int64(p.Cumulative)), p.Rate)
		}
	}

	res, err := musicscan.Run(context.Background(), options, hook)
	if err != nil {
		return err
	}

	PrintReport(res, os.Stdout)

	return nil
}
