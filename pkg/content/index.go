// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/gardener/navforge/pkg/internal/link"
)

// ErrPageNotFound signals that no page exists for a slug
type ErrPageNotFound string

// Error returns "page s not found" error
func (e ErrPageNotFound) Error() string {
	return fmt.Sprintf("page %q not found", string(e))
}

// Index is the catalog of available pages and their metadata
//
//counterfeiter:generate . Index
type Index interface {
	// Directory returns the pages beneath dir in the natural order of the index.
	// The boolean is false if the index has no such directory.
	Directory(dir string) ([]Page, bool)
	// Page returns the page with the given slug
	Page(slug string) (Page, bool)
	// URL resolves a slug to the canonical URL of its page
	URL(slug string) (string, error)
}

// IndexOption configures a MemoryIndex
type IndexOption func(*MemoryIndex)

// WithBase sets the base path all page URLs are prefixed with
func WithBase(base string) IndexOption {
	return func(i *MemoryIndex) {
		i.base = base
	}
}

// WithOrdering sets the natural order of directory listings
func WithOrdering(ordering Ordering) IndexOption {
	return func(i *MemoryIndex) {
		if ordering != nil {
			i.ordering = ordering
		}
	}
}

// MemoryIndex is an Index held in memory. It is read-only after construction
// and safe for concurrent use.
type MemoryIndex struct {
	base     string
	ordering Ordering
	pages    map[string]Page
	dirs     map[string]struct{}
}

// NewIndex creates an index of pages. Every directory a page sits in is
// registered; dirs registers additional, possibly empty, directories.
func NewIndex(pages []Page, dirs []string, opts ...IndexOption) (*MemoryIndex, error) {
	idx := &MemoryIndex{
		base:     "/",
		ordering: ByOrder,
		pages:    make(map[string]Page, len(pages)),
		dirs:     map[string]struct{}{"": {}},
	}
	for _, opt := range opts {
		opt(idx)
	}
	for _, dir := range dirs {
		idx.addDir(link.Clean(dir))
	}
	for _, page := range pages {
		page.Path = link.Clean(page.Path)
		page.Source = link.Clean(page.Source)
		if existing, ok := idx.pages[page.Path]; ok {
			return nil, fmt.Errorf("pages %s and %s share the slug %q", existing.location(), page.location(), page.Path)
		}
		idx.pages[page.Path] = page
		idx.addDir(path.Dir(page.location()))
	}
	return idx, nil
}

func (i *MemoryIndex) addDir(dir string) {
	for dir != "." && dir != "" && dir != "/" {
		i.dirs[dir] = struct{}{}
		dir = path.Dir(dir)
	}
}

// Directory returns the non hidden, non draft pages beneath dir, recursively.
// The content root is addressed with "" or ".".
func (i *MemoryIndex) Directory(dir string) ([]Page, bool) {
	dir = link.Clean(dir)
	if _, ok := i.dirs[dir]; !ok {
		return nil, false
	}
	prefix := dir + "/"
	out := []Page{}
	for _, page := range i.pages {
		if page.Hidden || page.Draft {
			continue
		}
		if dir == "" || strings.HasPrefix(page.location(), prefix) {
			out = append(out, page)
		}
	}
	// map iteration is random, settle on path order before applying the ordering
	slices.SortFunc(out, ByPath)
	slices.SortStableFunc(out, i.ordering)
	return out, true
}

// Page returns the page with the given slug
func (i *MemoryIndex) Page(slug string) (Page, bool) {
	page, ok := i.pages[link.Clean(slug)]
	return page, ok
}

// URL resolves a slug to the pretty URL of its page under the index base
func (i *MemoryIndex) URL(slug string) (string, error) {
	page, ok := i.Page(slug)
	if !ok {
		return "", ErrPageNotFound(slug)
	}
	return link.Pretty(i.base, page.Path)
}

// Len returns the number of pages in the index
func (i *MemoryIndex) Len() int {
	return len(i.pages)
}

// Directories returns all known directories in lexical order
func (i *MemoryIndex) Directories() []string {
	out := make([]string, 0, len(i.dirs))
	for dir := range i.dirs {
		if dir != "" {
			out = append(out, dir)
		}
	}
	slices.Sort(out)
	return out
}
