// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Site represents a site configuration document
type Site struct {
	// Title of the site
	Title string `yaml:"title"`
	// Base is the path the site is served under, e.g. /notes-astro/
	Base string `yaml:"base,omitempty"`
	// Social maps a social network to the URL of the site's account
	Social map[string]string `yaml:"social,omitempty"`
	// Sidebar is the ordered list of sidebar groups
	Sidebar []*GroupNode `yaml:"sidebar"`
}

// GroupNode represents a sidebar group. Exactly one of Items and Autogenerate
// must be set.
type GroupNode struct {
	Label string `yaml:"label"`
	// Items of an explicit group. An empty list is an explicit group with no
	// links, a missing list is no list at all.
	Items []*ItemNode `yaml:"items,omitempty"`
	// Autogenerate makes the group list every page of a content directory
	Autogenerate *AutogenerateNode `yaml:"autogenerate,omitempty"`
	// Collapsed renders the group closed by default
	Collapsed *bool `yaml:"collapsed,omitempty"`
}

// ItemNode represents an explicit sidebar entry
type ItemNode struct {
	Label string `yaml:"label,omitempty"`
	// Slug of the linked content page
	Slug string `yaml:"slug,omitempty"`
	// Link is an absolute URL used instead of a slug
	Link string `yaml:"link,omitempty"`
}

// AutogenerateNode represents the content directory of an autogenerated group
type AutogenerateNode struct {
	Directory string `yaml:"directory"`
	Collapsed *bool  `yaml:"collapsed,omitempty"`
}

// UnmarshalYAML accepts a bare slug as a shorthand item
func (i *ItemNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.Slug = value.Value
		return nil
	}
	type plain ItemNode
	return value.Decode((*plain)(i))
}

func (g *GroupNode) String() string {
	node, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Sprintf("group %q", g.Label)
	}
	return string(node)
}
