package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/musictools/musicscan/internal/musicscan"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func (c CLI) help() {
	//nolint:forbidigo // Help output to console
	fmt.Printf("musicscan %s\n\n", c.version)
	fmt.Println(heredoc.Doc(`
		musicscan counts music files in a folder and its subfolders.

		Usage:

		    musicscan --path <dir>

		Counts are reported per top-level subfolder and per extension. The
		extension catalog is fixed (mp3, flac, wav, aac, m4a, ogg and other
		common audio suffixes); matching is case-insensitive. Symbolic links
		are not followed.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options musicscan.Options

	pflag.StringVarP(&options.Path, "path", "p", "", "Path to the folder to scan (required)")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = c.help
	pflag.Parse()

	if options.Path == "" {
		pflag.Usage()

		return errors.New("missing required flag: --path")
	}

	if err := validatePath(options.Path); err != nil {
		return err
	}

	return logic(options)
}

// validatePath fails fast before any traversal starts.
func validatePath(path string) error {
	if statInfo, err := os.Stat(path); err != nil || !statInfo.IsDir() {
		return fmt.Errorf("'%s' is not a valid directory. Exiting.", path)
	}

	return nil
}
