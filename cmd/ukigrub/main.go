// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
