// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsCmdFlags struct {
	format      string
	destination string
}

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// NewGenCmdDocs generates the navforge command reference
// as markdown or man pages
func NewGenCmdDocs() *cobra.Command {
	flags := &genDocsCmdFlags{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := newGenDocsFormat(flags.format)
			if err != nil {
				return err
			}
			destination := filepath.Clean(flags.destination)
			if err := os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			c := cmd.Root()
			c.DisableAutoGenTag = true
			switch format {
			case genDocsManPages:
				header := &doc.GenManHeader{
					Title:   "NAVFORGE",
					Manual:  "navforge Command Reference",
					Section: "1",
				}
				err = doc.GenManTree(c, header, destination)
			default:
				err = doc.GenMarkdownTree(c, destination)
			}
			if err != nil {
				return fmt.Errorf("generating command reference into %s failed: %w", destination, err)
			}
			klog.Infof("Command reference written to %s", destination)
			return nil
		},
	}
	command.Flags().StringVarP(&flags.format, "format", "f", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&flags.destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}
