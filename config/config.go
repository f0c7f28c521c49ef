// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

// Package config resolves the ukigrub settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvFileVariable names an optional env file to load before reading the
// environment.
const EnvFileVariable = "UKIGRUB_ENV_FILE"

// Config holds the ukigrub settings.
type Config struct {
	ESP         string // ESP
	UKIPath     string // UKI_PATH
	Prefix      string // UKI_PREFIX
	Strict      bool   // UKI_STRICT
	Sort        string // UKI_SORT
	SaveDefault bool   // UKI_SAVEDEFAULT
	Verbose     bool   // UKI_VERBOSE
	Distributor string // GRUB_DISTRIBUTOR
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		ESP:         "/boot",
		UKIPath:     "EFI/Linux/",
		Prefix:      "uki-",
		Sort:        "none",
		SaveDefault: true,
	}
}

// Load reads the configuration from the environment.
//
// If envFile is empty, the file named by UKIGRUB_ENV_FILE is used, if any.
// Variables from the env file never override ones already set in the
// environment.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = os.Getenv(EnvFileVariable)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("Could not load env file %s: %w", envFile, err)
		}
	}

	def := Default()
	cfg := &Config{
		ESP:         getEnv("ESP", def.ESP),
		UKIPath:     getEnv("UKI_PATH", def.UKIPath),
		Prefix:      getEnv("UKI_PREFIX", def.Prefix),
		Sort:        getEnv("UKI_SORT", def.Sort),
		Distributor: os.Getenv("GRUB_DISTRIBUTOR"),
	}

	var err error
	if cfg.Strict, err = getBoolEnv("UKI_STRICT", def.Strict); err != nil {
		return nil, err
	}
	if cfg.SaveDefault, err = getBoolEnv("UKI_SAVEDEFAULT", def.SaveDefault); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = getBoolEnv("UKI_VERBOSE", def.Verbose); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
	}
	return b, nil
}
