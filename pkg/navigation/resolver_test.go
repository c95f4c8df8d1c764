// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation_test

import (
	"errors"
	"fmt"

	"github.com/gardener/navforge/pkg/content"
	"github.com/gardener/navforge/pkg/content/contentfakes"
	"github.com/gardener/navforge/pkg/navigation"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func order(i int) *int {
	return &i
}

var _ = Describe("Resolve", func() {
	var (
		idx     *content.MemoryIndex
		spec    navigation.Spec
		opts    []navigation.Option
		sidebar *navigation.Sidebar
		err     error
	)

	BeforeEach(func() {
		var idxErr error
		idx, idxErr = content.NewIndex([]content.Page{
			{Title: "Example Guide", Path: "guides/example", Source: "guides/example.md"},
			{Title: "B", Path: "notes/b", Source: "notes/b.md"},
			{Title: "A", Path: "notes/a", Source: "notes/a.md"},
			{Title: "Example Reference", Path: "reference/example", Source: "reference/example.md"},
		}, []string{"empty"}, content.WithBase("/notes-astro/"))
		Expect(idxErr).NotTo(HaveOccurred())
		opts = nil
	})

	JustBeforeEach(func() {
		sidebar, err = navigation.Resolve(spec, idx, opts...)
	})

	Context("explicit group", func() {
		BeforeEach(func() {
			spec = navigation.Spec{
				navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{
					{Label: "Example Guide", Slug: "guides/example"},
				}},
			}
		})

		It("resolves slugs to page URLs", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(sidebar.Groups).To(Equal([]navigation.ResolvedGroup{
				{
					Label: "Guides",
					Links: []navigation.Link{
						{Label: "Example Guide", URL: "/notes-astro/guides/example/", Slug: "guides/example"},
					},
				},
			}))
			Expect(sidebar.Warnings).To(BeEmpty())
		})

		Context("with an external link", func() {
			BeforeEach(func() {
				spec = navigation.Spec{
					navigation.ExplicitGroup{Label: "Links", Items: []navigation.Item{
						{Label: "GitHub", Link: "https://github.com/harsh-m-patil"},
						{Label: "Example Guide", Slug: "guides/example"},
					}},
				}
			})

			It("uses the link verbatim", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sidebar.Links()).To(Equal([]navigation.Link{
					{Label: "GitHub", URL: "https://github.com/harsh-m-patil"},
					{Label: "Example Guide", URL: "/notes-astro/guides/example/", Slug: "guides/example"},
				}))
			})
		})

		Context("with a bare slug", func() {
			BeforeEach(func() {
				spec = navigation.Spec{
					navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{
						{Slug: "guides/example"},
					}},
				}
			})

			It("labels the link like its page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sidebar.Links()).To(Equal([]navigation.Link{
					{Label: "Example Guide", URL: "/notes-astro/guides/example/", Slug: "guides/example"},
				}))
			})
		})

		Context("with an unknown slug", func() {
			BeforeEach(func() {
				spec = navigation.Spec{
					navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{
						{Label: "Missing", Slug: "guides/missing"},
					}},
				}
			})

			It("fails naming the group", func() {
				Expect(sidebar).To(BeNil())
				var unresolved *navigation.UnresolvedSlugError
				Expect(errors.As(err, &unresolved)).To(BeTrue())
				Expect(unresolved.Group).To(Equal("Guides"))
				Expect(unresolved.Slug).To(Equal("guides/missing"))
				Expect(errors.Is(err, content.ErrPageNotFound("guides/missing"))).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(`group "Guides"`))
			})
		})
	})

	Context("explicit groups only", func() {
		BeforeEach(func() {
			spec = navigation.Spec{}
			for i := 0; i < 5; i++ {
				spec = append(spec, navigation.ExplicitGroup{
					Label: fmt.Sprintf("Group %d", i),
					Items: []navigation.Item{{Label: "Guide", Slug: "guides/example"}},
				})
			}
		})

		It("keeps group count and order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(sidebar.Groups).To(HaveLen(len(spec)))
			for i, g := range sidebar.Groups {
				Expect(g.Label).To(Equal(spec[i].GroupLabel()))
			}
		})
	})

	Context("autogenerated group", func() {
		BeforeEach(func() {
			spec = navigation.Spec{
				navigation.AutogeneratedGroup{Label: "Notes", Directory: "notes", Collapsed: true},
			}
		})

		It("links every page of the directory labelled with its title", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(sidebar.Groups).To(Equal([]navigation.ResolvedGroup{
				{
					Label: "Notes",
					Links: []navigation.Link{
						{Label: "A", URL: "/notes-astro/notes/a/", Slug: "notes/a"},
						{Label: "B", URL: "/notes-astro/notes/b/", Slug: "notes/b"},
					},
					Collapsed:     true,
					Autogenerated: true,
					Directory:     "notes",
				},
			}))
		})

		Context("with a custom ordering", func() {
			BeforeEach(func() {
				opts = []navigation.Option{navigation.WithOrdering(func(a, b content.Page) int {
					return -content.ByPath(a, b)
				})}
			})

			It("applies the ordering", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sidebar.Groups[0].Links[0].Label).To(Equal("B"))
				Expect(sidebar.Groups[0].Links[1].Label).To(Equal("A"))
			})
		})

		Context("with a missing directory", func() {
			BeforeEach(func() {
				spec = navigation.Spec{
					navigation.AutogeneratedGroup{Label: "Empty", Directory: "ghost"},
				}
			})

			It("fails with MissingDirectoryError", func() {
				Expect(sidebar).To(BeNil())
				var missing *navigation.MissingDirectoryError
				Expect(errors.As(err, &missing)).To(BeTrue())
				Expect(missing.Group).To(Equal("Empty"))
				Expect(missing.Directory).To(Equal("ghost"))
			})
		})

		Context("with an empty directory", func() {
			BeforeEach(func() {
				spec = navigation.Spec{
					navigation.AutogeneratedGroup{Label: "Empty", Directory: "empty"},
					navigation.AutogeneratedGroup{Label: "Notes", Directory: "notes"},
				}
			})

			It("renders an empty group and warns", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sidebar.Groups).To(HaveLen(2))
				Expect(sidebar.Groups[0].Label).To(Equal("Empty"))
				Expect(sidebar.Groups[0].Links).To(BeEmpty())
				Expect(sidebar.Warnings).To(HaveLen(1))
				var empty *navigation.EmptyDirectoryError
				Expect(errors.As(sidebar.Warnings[0], &empty)).To(BeTrue())
				Expect(empty.Group).To(Equal("Empty"))
			})
		})
	})

	Context("the original site", func() {
		BeforeEach(func() {
			spec = navigation.Spec{
				navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{
					{Label: "Example Guide", Slug: "guides/example"},
				}},
				navigation.AutogeneratedGroup{Label: "References", Directory: "reference"},
				navigation.AutogeneratedGroup{Label: "Notes", Directory: "notes"},
			}
		})

		It("is idempotent", func() {
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 10; i++ {
				again, err := navigation.Resolve(spec, idx, opts...)
				Expect(err).NotTo(HaveOccurred())
				Expect(again).To(Equal(sidebar))
			}
		})

		It("keeps declaration order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(sidebar.Groups).To(HaveLen(3))
			Expect(sidebar.Groups[0].Label).To(Equal("Guides"))
			Expect(sidebar.Groups[1].Label).To(Equal("References"))
			Expect(sidebar.Groups[2].Label).To(Equal("Notes"))
			Expect(sidebar.Groups[1].Links).To(Equal([]navigation.Link{
				{Label: "Example Reference", URL: "/notes-astro/reference/example/", Slug: "reference/example"},
			}))
		})
	})

	Context("with several fatal problems", func() {
		BeforeEach(func() {
			spec = navigation.Spec{
				navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{{Label: "X", Slug: "x"}}},
				navigation.AutogeneratedGroup{Label: "Ghost", Directory: "ghost"},
			}
		})

		It("reports all of them", func() {
			Expect(sidebar).To(BeNil())
			Expect(err.Error()).To(ContainSubstring(`group "Guides"`))
			Expect(err.Error()).To(ContainSubstring(`group "Ghost"`))
		})
	})
})

var _ = Describe("Validate", func() {
	var idx *contentfakes.FakeIndex

	BeforeEach(func() {
		idx = &contentfakes.FakeIndex{}
	})

	It("rejects a group without a source before any lookup", func() {
		_, err := navigation.Resolve(navigation.Spec{nil}, idx)
		var source *navigation.GroupSourceError
		Expect(errors.As(err, &source)).To(BeTrue())
		Expect(idx.DirectoryCallCount()).To(Equal(0))
		Expect(idx.URLCallCount()).To(Equal(0))
	})

	It("rejects malformed groups before any lookup", func() {
		_, err := navigation.Resolve(navigation.Spec{
			navigation.ExplicitGroup{Label: "Guides", Items: []navigation.Item{
				{Label: "Both", Slug: "a", Link: "https://example.com"},
				{Label: "Neither"},
				{Link: "https://example.com"},
			}},
			navigation.AutogeneratedGroup{Label: "Notes"},
			navigation.AutogeneratedGroup{Directory: "notes"},
		}, idx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`"Both" has both slug and link`))
		Expect(err.Error()).To(ContainSubstring(`"Neither" has neither slug nor link`))
		Expect(err.Error()).To(ContainSubstring("item #2 links need a label"))
		Expect(err.Error()).To(ContainSubstring("group #4 has no label"))
		Expect(err.Error()).To(ContainSubstring("autogenerate has no directory"))
		Expect(idx.Invocations()).To(BeEmpty())
	})

	It("accepts a valid spec", func() {
		Expect(navigation.Validate(navigation.Spec{
			navigation.ExplicitGroup{Label: "Guides"},
			navigation.AutogeneratedGroup{Label: "Site", Directory: "/"},
		})).To(Succeed())
	})

	It("queries the index only through the content interface", func() {
		idx.DirectoryReturns([]content.Page{
			{Title: "First", Path: "notes/first", Order: order(1)},
			{Title: "Second", Path: "notes/second"},
		}, true)
		idx.URLCalls(func(slug string) (string, error) {
			return "/" + slug + "/", nil
		})
		sidebar, err := navigation.Resolve(navigation.Spec{
			navigation.AutogeneratedGroup{Label: "Notes", Directory: "notes"},
		}, idx)
		Expect(err).NotTo(HaveOccurred())
		Expect(idx.DirectoryArgsForCall(0)).To(Equal("notes"))
		Expect(sidebar.Links()).To(Equal([]navigation.Link{
			{Label: "First", URL: "/notes/first/", Slug: "notes/first"},
			{Label: "Second", URL: "/notes/second/", Slug: "notes/second"},
		}))
	})
})
