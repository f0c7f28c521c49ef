// This file is part of ukigrub
// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/canonical/ukigrub/config"
	"github.com/canonical/ukigrub/ukiboot"
)

type options struct {
	envFile       string
	esp           string
	ukiPath       string
	prefix        string
	strict        bool
	sort          string
	noSaveDefault bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "ukigrub",
		Short: "Generate grub menu entries for unified kernel images",
		Long: `ukigrub looks for unified kernel images named
<prefix><name>-<machine id>-<build id>.efi on the ESP and writes a grub menu
entry chainloading each of them to standard output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator(cmd, &opts)
			if err != nil {
				return err
			}
			_, err = gen.Run(cmd.OutOrStdout())
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the unified kernel images that would get a menu entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator(cmd, &opts)
			if err != nil {
				return err
			}
			images, err := gen.Images()
			if err != nil {
				return err
			}
			return writeImageList(cmd.OutOrStdout(), images)
		},
	}
	root.AddCommand(listCmd)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "load variables from this file first (default $"+config.EnvFileVariable+")")
	flags.StringVar(&opts.esp, "esp", "", "mount point of the ESP (default $ESP or /boot)")
	flags.StringVar(&opts.ukiPath, "uki-path", "", "image directory relative to the ESP (default $UKI_PATH or EFI/Linux/)")
	flags.StringVar(&opts.prefix, "prefix", "", "image file name prefix (default $UKI_PREFIX or uki-)")
	flags.BoolVar(&opts.strict, "strict", false, "only accept images with the rolling build id")
	flags.StringVar(&opts.sort, "sort", "", "entry order: none, name or version (default $UKI_SORT or none)")
	flags.BoolVar(&opts.noSaveDefault, "no-savedefault", false, "do not remember the booted entry as the default")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped files")

	return root
}

// newGenerator combines the environment with the flags given on the command
// line, flags taking precedence.
func newGenerator(cmd *cobra.Command, opts *options) (*ukiboot.Generator, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("esp") {
		cfg.ESP = opts.esp
	}
	if flags.Changed("uki-path") {
		cfg.UKIPath = opts.ukiPath
	}
	if flags.Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("sort") {
		cfg.Sort = opts.sort
	}
	if flags.Changed("no-savedefault") {
		cfg.SaveDefault = !opts.noSaveDefault
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	order, err := ukiboot.ParseSortOrder(cfg.Sort)
	if err != nil {
		return nil, err
	}

	ukiboot.Verbose = cfg.Verbose
	// Standard output is the generated config, so color depends on stderr.
	color.NoColor = os.Getenv("NO_COLOR") != "" ||
		!(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	return &ukiboot.Generator{
		ESP:         cfg.ESP,
		UKIPath:     cfg.UKIPath,
		Prefix:      cfg.Prefix,
		Suffix:      ukiboot.DefaultSuffix,
		Label:       ukiboot.ResolveLabel(cfg.Distributor),
		Strict:      cfg.Strict,
		Sort:        order,
		SaveDefault: cfg.SaveDefault,
	}, nil
}

func writeImageList(w io.Writer, images []ukiboot.Image) error {
	for _, img := range images {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", img.Info.Name, img.Info.MachineID, img.Info.BuildID, img.FileName); err != nil {
			return fmt.Errorf("Could not write image list: %w", err)
		}
	}
	return nil
}
