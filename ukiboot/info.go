// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"fmt"
	"regexp"
)

const (
	// RollingBuildID is the only build id accepted by the strict pattern.
	RollingBuildID = "rolling"

	namePattern      = `[a-z\-]+?`
	machineIDPattern = `[a-z0-9]{32}`
	buildIDPattern   = `[0-9A-Za-z_.]*`
)

// UKIInfo is the metadata encoded in a UKI file name:
//
//	<prefix><name>-<machine id>-<build id><suffix>
type UKIInfo struct {
	Name      string // application name, [a-z-]+
	MachineID string // 32 characters of [a-z0-9]
	BuildID   string // "rolling" or a free form version tag
}

func newPattern(prefix, suffix, build string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s(%s)-(%s)-(%s)%s$`,
		regexp.QuoteMeta(prefix), namePattern, machineIDPattern, build, regexp.QuoteMeta(suffix)))
}

// NewPattern returns the permissive file name pattern for prefix and suffix,
// accepting any build id made of [0-9A-Za-z_.], including an empty one.
func NewPattern(prefix, suffix string) *regexp.Regexp {
	return newPattern(prefix, suffix, buildIDPattern)
}

// NewStrictPattern returns the file name pattern for prefix and suffix that
// only accepts the rolling build id.
func NewStrictPattern(prefix, suffix string) *regexp.Regexp {
	return newPattern(prefix, suffix, regexp.QuoteMeta(RollingBuildID))
}

// ParseFileName extracts the UKIInfo from a bare file name.
//
// If pattern is nil, the permissive pattern for prefix and suffix is used.
// Otherwise pattern must be anchored and have exactly three capture groups
// for name, machine id and build id, and prefix and suffix are ignored.
//
// The second return value is false if fileName is not one of ours.
func ParseFileName(prefix, suffix, fileName string, pattern *regexp.Regexp) (UKIInfo, bool) {
	if pattern == nil {
		pattern = NewPattern(prefix, suffix)
	}
	m := pattern.FindStringSubmatch(fileName)
	if len(m) != 4 {
		return UKIInfo{}, false
	}
	return UKIInfo{Name: m[1], MachineID: m[2], BuildID: m[3]}, true
}
