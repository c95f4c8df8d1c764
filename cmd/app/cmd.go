// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"sync"

	"github.com/gardener/navforge/cmd/configuration"
	"github.com/gardener/navforge/cmd/gendocs"
	"github.com/gardener/navforge/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var klogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "navforge",
		Short: "Resolve the sidebar navigation of a documentation site",
		Long: `navforge reads a site configuration declaring the sidebar groups of a
documentation site, either as explicit lists of links or as content
directories to list, indexes the site content and writes the resolved
sidebar for a site renderer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := loader.Load(vip); err != nil {
				return err
			}
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}
	configureFlags(cmd, vip)

	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klogFlags.Do(func() {
		klog.InitFlags(nil)
	})
	AddFlags(cmd)
	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.Flags().AddGoFlag(gf)
	})
}
