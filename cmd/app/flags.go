// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"

	"github.com/gardener/navforge/cmd/configuration"
	"github.com/gardener/navforge/pkg/content"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("site", "f", "",
		"Site configuration path.")
	_ = vip.BindPFlag("site", command.Flags().Lookup("site"))

	command.Flags().String("content", "src/content/docs",
		"Content directory, or GitHub tree URL (https://github.com/org/repo/tree/ref/path) of the content.")
	_ = vip.BindPFlag("content", command.Flags().Lookup("content"))

	command.Flags().StringP("destination", "d", ".",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("format", "yaml",
		"Output format. Must be one of: `yaml`, `json` or `hugo` (Hugo menus configuration).")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().Bool("dry-run", false,
		"Resolves the sidebar but instead of writing files, outputs the projected file hierarchy and content to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().StringToString("variables", map[string]string{},
		"Variables applied to parameterized (using Go template) site configuration.")
	_ = vip.BindPFlag("variables", command.Flags().Lookup("variables"))

	command.Flags().String("ordering", "order",
		"Ordering of autogenerated sidebar groups. Must be one of: `order` (front matter sidebar.order, then path) or `path`.")
	_ = vip.BindPFlag("ordering", command.Flags().Lookup("ordering"))

	command.Flags().Int("read-workers", content.DefaultReadWorkers,
		"Number of content files read in parallel.")
	_ = vip.BindPFlag("read-workers", command.Flags().Lookup("read-workers"))

	command.Flags().StringToString("github-oauth-env-map", map[string]string{},
		"Map between GitHub instances and the environment variables holding their OAuth tokens (example: github.com=GITHUB_TOKEN). A token may take the form `username:token`.")
	_ = vip.BindPFlag("github-oauth-env-map", command.Flags().Lookup("github-oauth-env-map"))

	command.Flags().Bool("use-git", false,
		"Clone remote content with git instead of reading it through the GitHub API.")
	_ = vip.BindPFlag("use-git", command.Flags().Lookup("use-git"))

	command.Flags().String("metrics-file", "",
		"If specified, navforge dumps its metrics in the Prometheus text format into this file.")
	_ = vip.BindPFlag("metrics-file", command.Flags().Lookup("metrics-file"))

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.navforge
		cacheDir = filepath.Join(userHomeDir, configuration.NavforgeHomeDir)
	}
	command.Flags().String("cache-dir", cacheDir,
		"Cache directory, used for repository and GitHub API cache.")
	_ = vip.BindPFlag("cache-dir", command.Flags().Lookup("cache-dir"))
}
