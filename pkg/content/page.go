// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"cmp"
	"strings"
)

// Page is a content page known to an Index
type Page struct {
	// Title of the page, taken from its front matter
	Title string `json:"title" yaml:"title"`
	// Path identifies the page. It is the page slug, e.g. "notes/a"
	Path string `json:"path" yaml:"path"`
	// Source is the file the page was read from, relative to the content root.
	// Empty for pages that were not read from a file.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Order is the front matter `sidebar.order` value
	Order *int `json:"order,omitempty" yaml:"order,omitempty"`
	// SidebarLabel is the front matter `sidebar.label` value
	SidebarLabel string `json:"sidebarLabel,omitempty" yaml:"sidebarLabel,omitempty"`
	// Hidden pages are linkable but left out of autogenerated groups
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	// Draft pages are linkable but left out of autogenerated groups
	Draft bool `json:"draft,omitempty" yaml:"draft,omitempty"`
}

// Label is the text used for the page in navigation
func (p Page) Label() string {
	if p.SidebarLabel != "" {
		return p.SidebarLabel
	}
	return p.Title
}

// location is the file path used to decide which directories the page is in
func (p Page) location() string {
	if p.Source != "" {
		return p.Source
	}
	return p.Path
}

// Ordering compares two pages of the same directory listing.
// It follows the slices.SortFunc contract.
type Ordering func(a, b Page) int

// ByPath orders pages lexically by their path
func ByPath(a, b Page) int {
	return strings.Compare(a.Path, b.Path)
}

// ByOrder orders pages with a front matter order first, ascending, and
// falls back to ByPath for pages with equal or no order
func ByOrder(a, b Page) int {
	switch {
	case a.Order != nil && b.Order != nil:
		if c := cmp.Compare(*a.Order, *b.Order); c != 0 {
			return c
		}
	case a.Order != nil:
		return -1
	case b.Order != nil:
		return 1
	}
	return ByPath(a, b)
}

// OrderingByName returns the named ordering. Known names are "order" and "path".
func OrderingByName(name string) (Ordering, bool) {
	switch strings.ToLower(name) {
	case "", "order":
		return ByOrder, true
	case "path":
		return ByPath, true
	}
	return nil, false
}
