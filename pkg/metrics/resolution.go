// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"errors"

	"github.com/gardener/navforge/pkg/navigation"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is the prefix of all navforge metrics
const Namespace = "navforge"

var (
	groupsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sidebar_groups_total",
		Help:      "Resolved sidebar groups by kind.",
	},
		[]string{"kind"},
	)

	linksCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sidebar_links_total",
		Help:      "Resolved sidebar links.",
	},
		[]string{},
	)

	warningsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sidebar_warnings_total",
		Help:      "Recoverable problems met while resolving the sidebar.",
	},
		[]string{},
	)

	errorsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "sidebar_errors_total",
		Help:      "Fatal problems met while resolving the sidebar by reason.",
	},
		[]string{"reason"},
	)
)

// RegisterResolutionMetrics registers the sidebar metrics in registry, or in
// the default registry if nil.
func RegisterResolutionMetrics(registry prometheus.Registerer) {
	ResetResolutionMetrics()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(groupsCounter, linksCounter, warningsCounter, errorsCounter)
}

// ResetResolutionMetrics resets the sidebar metrics
func ResetResolutionMetrics() {
	groupsCounter.Reset()
	linksCounter.Reset()
	warningsCounter.Reset()
	errorsCounter.Reset()
}

// ObserveResolution records the outcome of a sidebar resolution. Either
// sidebar or err is expected to be nil.
func ObserveResolution(sidebar *navigation.Sidebar, err error) {
	if err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				errorsCounter.WithLabelValues(reason(e)).Inc()
			}
		} else {
			errorsCounter.WithLabelValues(reason(err)).Inc()
		}
	}
	if sidebar == nil {
		return
	}
	for _, g := range sidebar.Groups {
		kind := "explicit"
		if g.Autogenerated {
			kind = "autogenerated"
		}
		groupsCounter.WithLabelValues(kind).Inc()
		linksCounter.WithLabelValues().Add(float64(len(g.Links)))
	}
	warningsCounter.WithLabelValues().Add(float64(len(sidebar.Warnings)))
}

func reason(err error) string {
	var (
		missing    *navigation.MissingDirectoryError
		unresolved *navigation.UnresolvedSlugError
		source     *navigation.GroupSourceError
		invalid    *navigation.InvalidGroupError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_directory"
	case errors.As(err, &unresolved):
		return "unresolved_slug"
	case errors.As(err, &source):
		return "group_source"
	case errors.As(err, &invalid):
		return "invalid_group"
	}
	return "other"
}

// WriteToTextfile dumps the metrics gathered by g to path in the text
// exposition format
func WriteToTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}
