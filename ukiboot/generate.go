// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

// Package ukiboot finds unified kernel images on the ESP and generates grub
// menu entries chainloading them.
package ukiboot

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"regexp"
)

// DefaultSuffix is the file name suffix of unified kernel images.
const DefaultSuffix = ".efi"

// Generator generates menu entries for the images in one directory of the ESP.
type Generator struct {
	ESP         string // mount point of the ESP
	UKIPath     string // directory of the images, relative to ESP
	Prefix      string // required file name prefix
	Suffix      string // required file name suffix
	Label       string // display label, see ResolveLabel
	Strict      bool   // only accept the rolling build id
	Sort        SortOrder
	SaveDefault bool
}

// Image is a located file that parsed successfully.
type Image struct {
	FileName string
	Info     UKIInfo
}

func (g *Generator) pattern() *regexp.Regexp {
	if g.Strict {
		return NewStrictPattern(g.Prefix, g.Suffix)
	}
	return nil
}

// Images locates and parses the images, in the configured order. A warning
// is logged for each entry that could not be enumerated, files that do not
// parse are skipped.
func (g *Generator) Images() ([]Image, error) {
	log.Printf("%s in %s", green("search"), blue(filepath.Join(g.ESP, g.UKIPath)))

	candidates, err := Locate(g.ESP, g.UKIPath, g.Prefix, g.Suffix)
	if err != nil {
		return nil, err
	}

	pattern := g.pattern()
	var images []Image
	for _, c := range candidates {
		if c.Err != nil {
			warnf("fail: %s: %v", c.Path, c.Err)
			continue
		}
		fileName := filepath.Base(c.Path)
		info, ok := ParseFileName(g.Prefix, g.Suffix, fileName, pattern)
		if !ok {
			debugf("skipping %s", fileName)
			continue
		}
		images = append(images, Image{FileName: fileName, Info: info})
	}

	sortImages(images, g.Sort)
	return images, nil
}

// Run writes a menu entry for each image to w and returns the number of
// entries written.
func (g *Generator) Run(w io.Writer) (int, error) {
	images, err := g.Images()
	if err != nil {
		return 0, err
	}

	for i, img := range images {
		log.Printf("%s entry for %s", green("adding"), blue(img.Info.Name))
		entry := NewMenuEntry(img.Info, g.Label, g.UKIPath, img.FileName, g.SaveDefault)
		if err := WriteMenuEntries(w, []MenuEntry{entry}); err != nil {
			return i, fmt.Errorf("Could not write menu entries: %w", err)
		}
	}
	return len(images), nil
}
