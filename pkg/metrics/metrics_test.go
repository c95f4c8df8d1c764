// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/navforge/pkg/metrics"
	"github.com/gardener/navforge/pkg/navigation"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	var registry *prometheus.Registry

	BeforeEach(func() {
		registry = prometheus.NewRegistry()
		metrics.RegisterClientMetrics(registry)
		metrics.RegisterResolutionMetrics(registry)
	})

	It("counts resolved groups, links and warnings", func() {
		metrics.ObserveResolution(&navigation.Sidebar{
			Groups: []navigation.ResolvedGroup{
				{Label: "Guides", Links: []navigation.Link{{Label: "Example Guide", URL: "/guides/example/"}}},
				{Label: "Notes", Autogenerated: true, Links: []navigation.Link{{Label: "A"}, {Label: "B"}}},
				{Label: "Empty", Autogenerated: true, Links: []navigation.Link{}},
			},
			Warnings: []error{&navigation.EmptyDirectoryError{Group: "Empty", Directory: "empty"}},
		}, nil)
		Expect(testutil.GatherAndCount(registry, "navforge_sidebar_groups_total")).To(Equal(2))
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP navforge_sidebar_groups_total Resolved sidebar groups by kind.
# TYPE navforge_sidebar_groups_total counter
navforge_sidebar_groups_total{kind="autogenerated"} 2
navforge_sidebar_groups_total{kind="explicit"} 1
# HELP navforge_sidebar_links_total Resolved sidebar links.
# TYPE navforge_sidebar_links_total counter
navforge_sidebar_links_total 3
# HELP navforge_sidebar_warnings_total Recoverable problems met while resolving the sidebar.
# TYPE navforge_sidebar_warnings_total counter
navforge_sidebar_warnings_total 1
`), "navforge_sidebar_groups_total", "navforge_sidebar_links_total", "navforge_sidebar_warnings_total")).To(Succeed())
	})

	It("counts fatal errors by reason", func() {
		var errs *multierror.Error
		errs = multierror.Append(errs,
			&navigation.MissingDirectoryError{Group: "Empty", Directory: "ghost"},
			&navigation.UnresolvedSlugError{Group: "Guides", Slug: "x"},
			&navigation.UnresolvedSlugError{Group: "Guides", Slug: "y"},
			fmt.Errorf("boom"),
		)
		metrics.ObserveResolution(nil, errs)
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP navforge_sidebar_errors_total Fatal problems met while resolving the sidebar by reason.
# TYPE navforge_sidebar_errors_total counter
navforge_sidebar_errors_total{reason="missing_directory"} 1
navforge_sidebar_errors_total{reason="other"} 1
navforge_sidebar_errors_total{reason="unresolved_slug"} 2
`), "navforge_sidebar_errors_total")).To(Succeed())
	})

	It("instruments an http client", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()
		client := metrics.InstrumentClientRoundTripperDuration(&http.Client{})
		resp, err := client.Get(server.URL)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Body.Close()).To(Succeed())
		Expect(testutil.GatherAndCount(registry, "navforge_client_api_requests_total")).To(Equal(1))
	})

	It("writes metrics to a text file", func() {
		metrics.ObserveResolution(&navigation.Sidebar{Groups: []navigation.ResolvedGroup{{Label: "Guides"}}}, nil)
		dir := filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
		Expect(os.MkdirAll(dir, os.ModePerm)).To(Succeed())
		defer os.RemoveAll(dir)
		file := filepath.Join(dir, "navforge.prom")
		Expect(metrics.WriteToTextfile(file, registry)).To(Succeed())
		content, err := os.ReadFile(file)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring(`navforge_sidebar_groups_total{kind="explicit"} 1`))
	})
})
