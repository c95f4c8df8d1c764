// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardener/navforge/pkg/navigation"
	"github.com/gardener/navforge/pkg/writers"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type noConfig struct{}

func (noConfig) Load(*viper.Viper) error {
	return nil
}

var _ = Describe("navforge command", func() {
	var (
		args        []string
		out         bytes.Buffer
		destination string
		err         error
	)

	BeforeEach(func() {
		out.Reset()
		destination = filepath.Join(os.TempDir(), fmt.Sprintf("test%s", uuid.New().String()))
		args = []string{"--site", "testdata/site.yaml", "--content", "testdata/docs", "--variables", "base=/notes-astro/", "--destination", destination}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(destination)).To(Succeed())
	})

	JustBeforeEach(func() {
		cmd := newCommand(context.Background(), noConfig{})
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err = cmd.Execute()
	})

	It("writes the resolved sidebar", func() {
		Expect(err).NotTo(HaveOccurred())
		b, readErr := os.ReadFile(filepath.Join(destination, "sidebar.yaml"))
		Expect(readErr).NotTo(HaveOccurred())
		bundle := &writers.Bundle{}
		Expect(yaml.Unmarshal(b, bundle)).To(Succeed())
		Expect(bundle.Title).To(Equal("My Docs"))
		Expect(bundle.Base).To(Equal("/notes-astro/"))
		Expect(bundle.Social).To(HaveKeyWithValue("github", "https://github.com/harsh-m-patil"))
		Expect(bundle.Sidebar).To(Equal([]navigation.ResolvedGroup{
			{
				Label: "Guides",
				Links: []navigation.Link{{Label: "Example Guide", URL: "/notes-astro/guides/example/", Slug: "guides/example"}},
			},
			{
				Label:         "References",
				Links:         []navigation.Link{{Label: "Example Reference", URL: "/notes-astro/reference/example/", Slug: "reference/example"}},
				Autogenerated: true,
				Directory:     "reference",
			},
			{
				Label: "Notes",
				Links: []navigation.Link{
					{Label: "B", URL: "/notes-astro/notes/b/", Slug: "notes/b"},
					{Label: "A", URL: "/notes-astro/notes/a/", Slug: "notes/a"},
				},
				Autogenerated: true,
				Directory:     "notes",
			},
			{
				Label:         "Drafts",
				Links:         []navigation.Link{},
				Autogenerated: true,
				Directory:     "drafts",
			},
		}))
	})

	Context("ordering by path", func() {
		BeforeEach(func() {
			args = append(args, "--ordering", "path", "--format", "json")
		})

		It("lists notes by path", func() {
			Expect(err).NotTo(HaveOccurred())
			b, readErr := os.ReadFile(filepath.Join(destination, "sidebar.json"))
			Expect(readErr).NotTo(HaveOccurred())
			bundle := &writers.Bundle{}
			Expect(json.Unmarshal(b, bundle)).To(Succeed())
			Expect(bundle.Sidebar[2].Links[0].Label).To(Equal("A"))
			Expect(bundle.Sidebar[2].Links[1].Label).To(Equal("B"))
		})
	})

	Context("hugo format", func() {
		BeforeEach(func() {
			args = append(args, "--format", "hugo")
		})

		It("writes the hugo menus", func() {
			Expect(err).NotTo(HaveOccurred())
			b, readErr := os.ReadFile(filepath.Join(destination, "config", "_default", "menus.yaml"))
			Expect(readErr).NotTo(HaveOccurred())
			menus := &writers.Menus{}
			Expect(yaml.Unmarshal(b, menus)).To(Succeed())
			Expect(menus.Main).To(HaveLen(8))
			Expect(menus.Main[1].Name).To(Equal("Example Guide"))
			Expect(menus.Main[1].Parent).To(Equal(menus.Main[0].Identifier))
		})
	})

	Context("dry run", func() {
		BeforeEach(func() {
			args = append(args, "--dry-run")
		})

		It("prints instead of writing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("sidebar.yaml\n"))
			Expect(out.String()).To(ContainSubstring("url: /notes-astro/guides/example/"))
			_, statErr := os.Stat(destination)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})
	})

	Context("with metrics file", func() {
		var metricsFile string

		BeforeEach(func() {
			metricsFile = filepath.Join(destination, "navforge.prom")
			args = append(args, "--metrics-file", metricsFile)
		})

		It("dumps the metrics", func() {
			Expect(err).NotTo(HaveOccurred())
			b, readErr := os.ReadFile(metricsFile)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(b)).To(ContainSubstring(`navforge_sidebar_groups_total{kind="autogenerated"} 3`))
			Expect(string(b)).To(ContainSubstring("navforge_sidebar_links_total 4"))
			Expect(string(b)).To(ContainSubstring("navforge_sidebar_warnings_total 1"))
		})
	})

	Context("missing directory", func() {
		BeforeEach(func() {
			args[1] = "testdata/ghost.yaml"
		})

		It("fails", func() {
			var missing *navigation.MissingDirectoryError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Group).To(Equal("Empty"))
			_, statErr := os.Stat(destination)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})
	})

	Context("group with both sources", func() {
		BeforeEach(func() {
			args[1] = "testdata/invalid.yaml"
			args[3] = "testdata/missing"
		})

		It("fails before reading any content", func() {
			var source *navigation.GroupSourceError
			Expect(errors.As(err, &source)).To(BeTrue())
			Expect(source.Group).To(Equal("Both"))
		})
	})

	Context("missing variable", func() {
		BeforeEach(func() {
			args = []string{"--site", "testdata/site.yaml", "--content", "testdata/docs", "--destination", destination}
		})

		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("base"))
		})
	})

	Context("unknown format", func() {
		BeforeEach(func() {
			args = append(args, "--format", "toml")
		})

		It("fails", func() {
			Expect(err).To(MatchError("unknown format 'toml'. Must be one of [yaml json hugo]"))
		})
	})

	Context("without site", func() {
		BeforeEach(func() {
			args = []string{"--content", "testdata/docs"}
		})

		It("fails", func() {
			Expect(err).To(MatchError("site configuration is not set, use --site"))
		})
	})
})
