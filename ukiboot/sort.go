// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"fmt"
	"sort"
	"strings"

	version "github.com/knqyf263/go-deb-version"
)

// SortOrder selects how menu entries are ordered.
type SortOrder string

const (
	// SortNone keeps the order in which images were found.
	SortNone SortOrder = "none"
	// SortName orders by name, then build id.
	SortName SortOrder = "name"
	// SortVersion orders newest build first.
	SortVersion SortOrder = "version"
)

// ParseSortOrder parses a sort order, the empty string meaning SortNone.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case "":
		return SortNone, nil
	case SortNone, SortName, SortVersion:
		return order, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// compareBuildIDs compares two build ids for newest-first ordering. The rolling
// build sorts first, then valid Debian versions from newest to oldest, then
// anything else lexically.
func compareBuildIDs(a, b string) int {
	if a == b {
		return 0
	}
	if a == RollingBuildID {
		return -1
	}
	if b == RollingBuildID {
		return 1
	}
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if va.GreaterThan(vb) {
			return -1
		}
		if va.LessThan(vb) {
			return 1
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// sortImages orders images in place. The sort is stable so that images that
// compare equal stay in enumeration order.
func sortImages(images []Image, order SortOrder) {
	switch order {
	case SortName:
		sort.SliceStable(images, func(i, j int) bool {
			if images[i].Info.Name != images[j].Info.Name {
				return images[i].Info.Name < images[j].Info.Name
			}
			return images[i].Info.BuildID < images[j].Info.BuildID
		})
	case SortVersion:
		sort.SliceStable(images, func(i, j int) bool {
			return compareBuildIDs(images[i].Info.BuildID, images[j].Info.BuildID) < 0
		})
	}
}
