// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package ukiboot

import (
	"log"

	"github.com/fatih/color"
)

// Verbose enables debug messages.
var Verbose bool

var (
	green  = color.New(color.FgGreen).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func debugf(format string, v ...interface{}) {
	if Verbose {
		log.Printf(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	log.Printf(yellow("warning")+": "+format, v...)
}
