package musicscan

import "sort"

// Catalog is the fixed set of recognized music file extensions, lower-case
// and dot-prefixed. Matching is case-insensitive: extensions are lowered
// before lookup.
//
//nolint:gochecknoglobals // Config constant
var Catalog = map[string]struct{}{
	// Common formats
	".mp3":  {},
	".aac":  {},
	".wav":  {},
	".flac": {},
	".m4a":  {},
	// High-quality/lossless formats
	".oga":  {},
	".ape":  {},
	".dsf":  {},
	".dff":  {},
	".aiff": {},
	".aif":  {},
	// Additional formats
	".ogg": {},
}

// Extensions returns the catalog as an alphabetically sorted slice.
func Extensions() []string {
	exts := make([]string, 0, len(Catalog))
	for ext := range Catalog {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}
