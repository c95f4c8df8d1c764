// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gardener/navforge/pkg/navigation"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is an output format of the resolved sidebar
type Format string

const (
	// FormatYAML writes the bundle as YAML
	FormatYAML Format = "yaml"
	// FormatJSON writes the bundle as JSON
	FormatJSON Format = "json"
	// FormatHugo writes the sidebar as a Hugo menus configuration
	FormatHugo Format = "hugo"
)

// Formats lists the supported formats
var Formats = []Format{FormatYAML, FormatJSON, FormatHugo}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", s, Formats)
}

// FileName is the name of the file a format is written to
func (f Format) FileName() string {
	switch f {
	case FormatJSON:
		return "sidebar.json"
	case FormatHugo:
		return "menus.yaml"
	}
	return "sidebar.yaml"
}

// Dir is the directory, relative to the destination, a format is written to
func (f Format) Dir() string {
	if f == FormatHugo {
		return "config/_default"
	}
	return "."
}

// Bundle is the site navigation handed over to a site renderer
type Bundle struct {
	Title   string                     `json:"title" yaml:"title"`
	Base    string                     `json:"base,omitempty" yaml:"base,omitempty"`
	Social  map[string]string          `json:"social,omitempty" yaml:"social,omitempty"`
	Sidebar []navigation.ResolvedGroup `json:"sidebar" yaml:"sidebar"`
}

// MenuEntry is a Hugo menu entry
type MenuEntry struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url,omitempty"`
	Weight     int    `yaml:"weight"`
	Parent     string `yaml:"parent,omitempty"`
}

// Menus is a Hugo menus configuration
type Menus struct {
	Main []MenuEntry `yaml:"main"`
}

// Encode serializes bundle in format
func Encode(bundle *Bundle, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(bundle); err != nil {
			return nil, err
		}
		return b.Bytes(), enc.Close()
	case FormatJSON:
		b, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatHugo:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(HugoMenus(bundle)); err != nil {
			return nil, err
		}
		return b.Bytes(), enc.Close()
	}
	return nil, fmt.Errorf("unknown format '%s'. Must be one of %v", format, Formats)
}

// HugoMenus converts the sidebar into the `main` Hugo menu. Groups become
// parent entries without URL and links their children, weighted in sidebar
// order. Identifiers are stable for the same base, group and link.
func HugoMenus(bundle *Bundle) *Menus {
	menus := &Menus{Main: []MenuEntry{}}
	ns := uuid.NewSHA1(uuid.NameSpaceURL, []byte(bundle.Base))
	for i, group := range bundle.Sidebar {
		parent := uuid.NewSHA1(ns, []byte(fmt.Sprintf("%d/%s", i, group.Label))).String()
		menus.Main = append(menus.Main, MenuEntry{
			Identifier: parent,
			Name:       group.Label,
			Weight:     i + 1,
		})
		for j, link := range group.Links {
			menus.Main = append(menus.Main, MenuEntry{
				Identifier: uuid.NewSHA1(ns, []byte(fmt.Sprintf("%s/%d/%s", parent, j, link.URL))).String(),
				Name:       link.Label,
				URL:        link.URL,
				Weight:     j + 1,
				Parent:     parent,
			})
		}
	}
	return menus
}
