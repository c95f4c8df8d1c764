// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

// Spec is the ordered declaration of sidebar groups
type Spec []Group

// Group is a sidebar group. It is either an ExplicitGroup or an
// AutogeneratedGroup, no other implementations exist.
type Group interface {
	// GroupLabel is the label rendered for the group
	GroupLabel() string
	group()
}

// ExplicitGroup lists its links by hand
type ExplicitGroup struct {
	Label     string
	Items     []Item
	Collapsed bool
}

// GroupLabel returns the group label
func (g ExplicitGroup) GroupLabel() string { return g.Label }

func (ExplicitGroup) group() {}

// AutogeneratedGroup takes its links from the pages of a content directory
type AutogeneratedGroup struct {
	Label     string
	Directory string
	Collapsed bool
}

// GroupLabel returns the group label
func (g AutogeneratedGroup) GroupLabel() string { return g.Label }

func (AutogeneratedGroup) group() {}

// Item is a hand written sidebar entry. Exactly one of Slug and Link is set:
// Slug points to a content page, Link is used as URL verbatim. Items with a
// Slug and no Label take the label of their page.
type Item struct {
	Label string
	Slug  string
	Link  string
}

// Link is a resolved sidebar entry
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	// Slug of the linked page, empty for external links
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`
}

// ResolvedGroup is a sidebar group with its concrete links
type ResolvedGroup struct {
	Label         string `json:"label" yaml:"label"`
	Links         []Link `json:"links" yaml:"links"`
	Collapsed     bool   `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Autogenerated bool   `json:"autogenerated,omitempty" yaml:"autogenerated,omitempty"`
	Directory     string `json:"directory,omitempty" yaml:"directory,omitempty"`
}

// Sidebar is the resolved navigation of a site
type Sidebar struct {
	Groups []ResolvedGroup `json:"groups" yaml:"groups"`
	// Warnings are the recoverable problems met during resolution
	Warnings []error `json:"-" yaml:"-"`
}

// Links returns all links of the sidebar in order
func (s *Sidebar) Links() []Link {
	var out []Link
	for _, g := range s.Groups {
		out = append(out, g.Links...)
	}
	return out
}
