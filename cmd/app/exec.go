// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gardener/navforge/pkg/content"
	"github.com/gardener/navforge/pkg/manifest"
	"github.com/gardener/navforge/pkg/metrics"
	"github.com/gardener/navforge/pkg/navigation"
	"github.com/gardener/navforge/pkg/osfakes/osshim"
	"github.com/gardener/navforge/pkg/writers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	var o options
	if err := vip.Unmarshal(&o); err != nil {
		return err
	}
	if o.SitePath == "" {
		return errors.New("site configuration is not set, use --site")
	}
	format, err := writers.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	ordering, ok := content.OrderingByName(o.Ordering)
	if !ok {
		return fmt.Errorf("unknown ordering '%s'. Must be one of [order path]", o.Ordering)
	}

	registry := prometheus.NewRegistry()
	metrics.RegisterClientMetrics(registry)
	metrics.RegisterResolutionMetrics(registry)
	if o.MetricsFile != "" {
		defer func() {
			if mErr := metrics.WriteToTextfile(o.MetricsFile, registry); mErr != nil {
				klog.Warningf("writing metrics to %s failed: %v", o.MetricsFile, mErr)
			}
		}()
	}

	shim := &osshim.OsShim{}
	klog.Infof("Site: %s", o.SitePath)
	site, err := manifest.Load(shim, o.SitePath, o.Variables)
	if err != nil {
		return err
	}
	spec, err := site.Spec()
	if err != nil {
		metrics.ObserveResolution(nil, err)
		return fmt.Errorf("invalid sidebar in %s: %w", o.SitePath, err)
	}
	if err := navigation.Validate(spec); err != nil {
		metrics.ObserveResolution(nil, err)
		return fmt.Errorf("invalid sidebar in %s: %w", o.SitePath, err)
	}

	src, err := initContentSource(ctx, shim, o.ContentPath, o.InitOptions)
	if err != nil {
		return err
	}
	index, err := content.Build(ctx, src,
		content.WithReadWorkers(o.ReadWorkers),
		content.WithIndexOptions(content.WithBase(site.Base), content.WithOrdering(ordering)))
	if err != nil {
		return err
	}
	sidebar, err := navigation.Resolve(spec, index)
	metrics.ObserveResolution(sidebar, err)
	if err != nil {
		return fmt.Errorf("failed to resolve the sidebar of %s: %w", o.SitePath, err)
	}

	blob, err := writers.Encode(&writers.Bundle{
		Title:   site.Title,
		Base:    site.Base,
		Social:  site.Social,
		Sidebar: sidebar.Groups,
	}, format)
	if err != nil {
		return err
	}
	if o.DryRun {
		factory := writers.NewDryRunWritersFactory(out)
		if err := factory.GetWriter(o.DestinationPath).Write(format.FileName(), format.Dir(), blob); err != nil {
			return err
		}
		return factory.Flush()
	}
	klog.Infof("Output dir: %s", o.DestinationPath)
	writer := &writers.FSWriter{Root: o.DestinationPath}
	return writer.Write(format.FileName(), format.Dir(), blob)
}
