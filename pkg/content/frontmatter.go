// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// parser extension for Frontmatter support, the page body itself is never rendered
var gmParser = goldmark.New(goldmark.WithExtensions(meta.Meta))

// Frontmatter parses the YAML front matter of a markdown document.
// Documents without front matter yield an empty map.
func Frontmatter(source []byte) (map[string]interface{}, error) {
	context := parser.NewContext()
	gmParser.Parser().Parse(text.NewReader(source), parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return nil, err
	}
	if fm == nil {
		fm = map[string]interface{}{}
	}
	return fm, nil
}

// NewPage builds the page read from file (relative to the content root)
// out of the document front matter
func NewPage(file string, fm map[string]interface{}) (Page, error) {
	file = strings.TrimPrefix(path.Clean("/"+file), "/")
	page := Page{
		Source: file,
		Path:   Slug(file),
	}
	if slug, ok := fm["slug"].(string); ok && slug != "" {
		page.Path = strings.Trim(slug, "/")
	}
	page.Title = ComputeTitle(file)
	if title, ok := fm["title"]; ok && title != nil {
		page.Title = fmt.Sprintf("%v", title)
	}
	if draft, ok := fm["draft"].(bool); ok {
		page.Draft = draft
	}
	sidebar := stringKeyed(fm["sidebar"])
	if sidebar == nil {
		if _, ok := fm["sidebar"]; ok {
			return page, fmt.Errorf("%s: sidebar front matter is not a map", file)
		}
		return page, nil
	}
	if label, ok := sidebar["label"]; ok && label != nil {
		page.SidebarLabel = fmt.Sprintf("%v", label)
	}
	if hidden, ok := sidebar["hidden"].(bool); ok {
		page.Hidden = hidden
	}
	if order, ok := sidebar["order"]; ok && order != nil {
		o, err := toInt(order)
		if err != nil {
			return page, fmt.Errorf("%s: sidebar.order: %w", file, err)
		}
		page.Order = &o
	}
	return page, nil
}

// Slug computes the slug of a content file: extension dropped, lower case,
// spaces replaced with dashes, and index files standing for their directory.
func Slug(file string) string {
	file = strings.TrimPrefix(path.Clean("/"+file), "/")
	slug := strings.TrimSuffix(file, path.Ext(file))
	if path.Base(slug) == "index" {
		slug = path.Dir(slug)
	}
	if slug == "." {
		return ""
	}
	slug = strings.ToLower(slug)
	return strings.ReplaceAll(slug, " ", "-")
}

// ComputeTitle determines a page title from its file name, or from its
// directory name for index files, and normalizes it as a title - removing
// `-`, `_`, the extension and converting to title case.
func ComputeTitle(file string) string {
	title := path.Base(file)
	title = strings.TrimSuffix(title, path.Ext(title))
	if title == "index" {
		dir := path.Dir(file)
		if dir == "." || dir == "/" {
			return "Home"
		}
		title = path.Base(dir)
	}
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return cases.Title(language.English).String(title)
}

// goldmark-meta decodes nested maps with interface keys
func stringKeyed(v interface{}) map[string]interface{} {
	switch m := v.(type) {
	case map[string]interface{}:
		return m
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out
	}
	return nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%v is not a number", v)
}
