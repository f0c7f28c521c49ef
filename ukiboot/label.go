// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sys/unix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackLabel is used when nothing is known about the running system.
const fallbackLabel = "Linux"

// osReleasePaths are probed in order, see os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

var unixUname = unix.Uname

// ResolveLabel returns the display label for menu entries.
//
// A non-empty distributor, as in GRUB_DISTRIBUTOR, wins and yields
// "<distributor> Linux". Otherwise the label comes from os-release, and if
// the distribution is unknown, from the kernel name.
func ResolveLabel(distributor string) string {
	if distributor = strings.TrimSpace(distributor); distributor != "" {
		return distributor + " Linux"
	}
	if name := distroName(); name != "" {
		return name
	}
	return kernelName()
}

// distroName returns the name of the distribution from the first readable
// os-release file, or "" if there is none.
func distroName() string {
	for _, path := range osReleasePaths {
		f, err := appFs.Open(path)
		if err != nil {
			continue
		}
		// os-release is a newline separated list of shell compatible
		// assignments, which is a subset of what godotenv parses.
		vars, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			debugf("Could not parse %s: %v", path, err)
			continue
		}
		for _, key := range []string{"PRETTY_NAME", "NAME"} {
			if v := strings.TrimSpace(vars[key]); v != "" {
				return v
			}
		}
		if id := strings.TrimSpace(vars["ID"]); id != "" {
			return cases.Title(language.Und).String(id)
		}
	}
	return ""
}

func kernelName() string {
	var uts unix.Utsname
	if err := unixUname(&uts); err != nil {
		return fallbackLabel
	}
	if name := unix.ByteSliceToString(uts.Sysname[:]); name != "" {
		return name
	}
	return fallbackLabel
}
