// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options are the resolved command options, from flags, environment and
// configuration file
type options struct {
	SitePath        string            `mapstructure:"site"`
	ContentPath     string            `mapstructure:"content"`
	DestinationPath string            `mapstructure:"destination"`
	Format          string            `mapstructure:"format"`
	DryRun          bool              `mapstructure:"dry-run"`
	Variables       map[string]string `mapstructure:"variables"`
	Ordering        string            `mapstructure:"ordering"`
	MetricsFile     string            `mapstructure:"metrics-file"`
	ReadWorkers     int               `mapstructure:"read-workers"`
	InitOptions     `mapstructure:",squash"`
}

// InitOptions are the options needed to set up a remote content source
type InitOptions struct {
	CacheHomeDir   string            `mapstructure:"cache-dir"`
	EnvCredentials map[string]string `mapstructure:"github-oauth-env-map"`
	UseGit         bool              `mapstructure:"use-git"`
}
