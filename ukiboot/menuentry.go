// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// MenuEntry is a GRUB menu entry that chainloads an EFI binary.
type MenuEntry struct {
	Title       string
	Modules     []string // modules to insmod before chainloading
	SaveDefault bool     // remember this entry as the default for next boot
	Chainloader string   // path of the EFI binary, relative to the ESP
}

// NewMenuEntry returns the menu entry for a parsed UKI. The chainloader path
// is ukiPath joined with fileName, exactly as configured.
func NewMenuEntry(info UKIInfo, label, ukiPath, fileName string, saveDefault bool) MenuEntry {
	return MenuEntry{
		Title: fmt.Sprintf("%s (%s)", label, info.Name),
		// The firmware may not have loaded a FAT driver for grub yet.
		Modules:     []string{"fat"},
		SaveDefault: saveDefault,
		Chainloader: path.Join(ukiPath, fileName),
	}
}

// quoteGrub single-quotes s for grub script. Single quotes cannot be escaped
// inside single quotes, so each one closes the string, adds an escaped quote
// and reopens it.
func quoteGrub(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Render returns the menu entry as a grub script block, followed by a blank
// line separating it from the next one.
func Render(e MenuEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "menuentry %s {\n", quoteGrub(e.Title))
	for _, mod := range e.Modules {
		fmt.Fprintf(&b, "\tinsmod %s\n", mod)
	}
	if e.SaveDefault {
		b.WriteString("\tsavedefault\n")
	}
	fmt.Fprintf(&b, "\tchainloader %s\n", e.Chainloader)
	b.WriteString("}\n\n")
	return b.String()
}

// WriteMenuEntries writes each entry, rendered, to w.
func WriteMenuEntries(w io.Writer, entries []MenuEntry) error {
	for _, entry := range entries {
		if _, err := io.WriteString(w, Render(entry)); err != nil {
			return fmt.Errorf("Could not write entry '%s': %w", entry.Title, err)
		}
	}
	return nil
}
