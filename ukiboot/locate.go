// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadPattern is returned when the search pattern cannot be compiled. With
// escaped prefix and suffix this indicates a bug, not a runtime condition.
var ErrBadPattern = errors.New("malformed glob pattern")

// Candidate is a single enumeration result. If Err is set, Path names the
// entry that could not be enumerated.
type Candidate struct {
	Path string
	Err  error
}

// globEscaper escapes the characters filepath.Match treats specially.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)

// GlobPattern returns the glob expression <esp>/<ukiPath>/<prefix>*<suffix>.
// The prefix and suffix are matched literally.
func GlobPattern(esp, ukiPath, prefix, suffix string) string {
	return filepath.Join(esp, ukiPath, globEscaper.Replace(prefix)+"*"+globEscaper.Replace(suffix))
}

// Locate enumerates every entry of <esp>/<ukiPath> whose name matches
// <prefix>*<suffix>, in the order the directory listing returns them.
//
// Failures affecting a single entry are returned as a Candidate with Err set,
// and do not stop the scan. A missing directory yields no candidates. The only
// error returned directly is ErrBadPattern.
func Locate(esp, ukiPath, prefix, suffix string) ([]Candidate, error) {
	pattern := GlobPattern(esp, ukiPath, prefix, suffix)
	dir, base := filepath.Split(pattern)
	if _, err := filepath.Match(base, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}

	entries, err := appFs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			debugf("%s does not exist, no images to add", dir)
			return nil, nil
		}
		return []Candidate{{Path: filepath.Clean(dir), Err: fmt.Errorf("Could not read directory: %w", err)}}, nil
	}

	var out []Candidate
	for _, entry := range entries {
		// The pattern was validated above, so Match cannot fail here.
		if ok, _ := filepath.Match(base, entry.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Resolve symlinks and catch entries removed since the listing.
		if _, err := appFs.Stat(path); err != nil {
			out = append(out, Candidate{Path: path, Err: err})
			continue
		}
		out = append(out, Candidate{Path: path})
	}
	return out, nil
}
