// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content_test

import (
	"github.com/gardener/navforge/pkg/content"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func order(i int) *int {
	return &i
}

func paths(pages []content.Page) []string {
	out := []string{}
	for _, p := range pages {
		out = append(out, p.Path)
	}
	return out
}

var _ = Describe("Memory index", func() {
	var (
		idx   *content.MemoryIndex
		pages []content.Page
		dirs  []string
		opts  []content.IndexOption
		err   error
	)

	BeforeEach(func() {
		pages = []content.Page{
			{Title: "B", Path: "notes/b"},
			{Title: "A", Path: "notes/a"},
			{Title: "Deep", Path: "notes/topic/deep"},
			{Title: "Example Guide", Path: "guides/example", Source: "guides/example.md"},
			{Title: "Secret", Path: "notes/secret", Hidden: true},
			{Title: "WIP", Path: "notes/wip", Draft: true},
		}
		dirs = []string{"reference"}
		opts = nil
	})

	JustBeforeEach(func() {
		idx, err = content.NewIndex(pages, dirs, opts...)
	})

	It("registers directories of pages and explicit directories", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(idx.Directories()).To(Equal([]string{"guides", "notes", "notes/topic", "reference"}))
		Expect(idx.Len()).To(Equal(6))
	})

	Describe("#Directory", func() {
		It("lists pages beneath a directory recursively in path order", func() {
			got, ok := idx.Directory("notes")
			Expect(ok).To(BeTrue())
			Expect(paths(got)).To(Equal([]string{"notes/a", "notes/b", "notes/topic/deep"}))
		})

		It("normalizes the directory name", func() {
			got, ok := idx.Directory("/notes/")
			Expect(ok).To(BeTrue())
			Expect(got).To(HaveLen(3))
		})

		It("reports an existing empty directory", func() {
			got, ok := idx.Directory("reference")
			Expect(ok).To(BeTrue())
			Expect(got).To(BeEmpty())
		})

		It("reports a missing directory", func() {
			_, ok := idx.Directory("ghost")
			Expect(ok).To(BeFalse())
		})

		It("does not treat a name prefix as a directory", func() {
			_, ok := idx.Directory("note")
			Expect(ok).To(BeFalse())
		})

		It("lists the whole site for the root", func() {
			got, ok := idx.Directory("")
			Expect(ok).To(BeTrue())
			Expect(got).To(HaveLen(4))
		})

		Context("with front matter order", func() {
			BeforeEach(func() {
				pages[0].Order = order(1)
				pages[2].Order = order(0)
			})

			It("sorts ordered pages first", func() {
				got, _ := idx.Directory("notes")
				Expect(paths(got)).To(Equal([]string{"notes/topic/deep", "notes/b", "notes/a"}))
			})

			Context("and path ordering", func() {
				BeforeEach(func() {
					opts = []content.IndexOption{content.WithOrdering(content.ByPath)}
				})

				It("ignores the order field", func() {
					got, _ := idx.Directory("notes")
					Expect(paths(got)).To(Equal([]string{"notes/a", "notes/b", "notes/topic/deep"}))
				})
			})
		})
	})

	Describe("#URL", func() {
		It("resolves a slug to a pretty URL", func() {
			Expect(idx.URL("guides/example")).To(Equal("/guides/example/"))
		})

		It("resolves hidden pages", func() {
			Expect(idx.URL("notes/secret")).To(Equal("/notes/secret/"))
		})

		Context("with a base", func() {
			BeforeEach(func() {
				opts = []content.IndexOption{content.WithBase("/notes-astro/")}
			})

			It("prefixes the base", func() {
				Expect(idx.URL("/guides/example")).To(Equal("/notes-astro/guides/example/"))
			})
		})

		It("fails for an unknown slug", func() {
			_, err := idx.URL("guides/missing")
			Expect(err).To(Equal(content.ErrPageNotFound("guides/missing")))
		})
	})

	Context("with two pages sharing a slug", func() {
		BeforeEach(func() {
			pages = append(pages, content.Page{Title: "Other A", Path: "notes/a", Source: "notes/a.mdx"})
		})

		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`share the slug "notes/a"`))
		})
	})
})
