// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gardener/navforge/pkg/content"
	"github.com/gardener/navforge/pkg/internal/link"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Option configures the resolution
type Option func(*resolver)

// WithOrdering overrides the natural order of the content index for
// autogenerated groups
func WithOrdering(ordering content.Ordering) Option {
	return func(r *resolver) {
		r.ordering = ordering
	}
}

type resolver struct {
	index    content.Index
	ordering content.Ordering
}

// Validate checks a spec without looking up any page. It reports every
// malformed group at once.
func Validate(spec Spec) error {
	var errs *multierror.Error
	for i, g := range spec {
		if g == nil {
			errs = multierror.Append(errs, &GroupSourceError{Group: fmt.Sprintf("#%d", i)})
			continue
		}
		if g.GroupLabel() == "" {
			errs = multierror.Append(errs, &InvalidGroupError{Reason: fmt.Sprintf("group #%d has no label", i)})
		}
		switch group := g.(type) {
		case ExplicitGroup:
			for j, item := range group.Items {
				if err := validateItem(item); err != nil {
					errs = multierror.Append(errs, &InvalidGroupError{Group: group.Label, Reason: fmt.Sprintf("item #%d %s", j, err)})
				}
			}
		case AutogeneratedGroup:
			if strings.TrimSpace(group.Directory) == "" {
				errs = multierror.Append(errs, &InvalidGroupError{Group: group.Label, Reason: "autogenerate has no directory"})
			}
		}
	}
	return errs.ErrorOrNil()
}

func validateItem(item Item) error {
	switch {
	case item.Label == "" && item.Link != "":
		return errors.New("links need a label")
	case item.Slug != "" && item.Link != "":
		return fmt.Errorf("%q has both slug and link", item.Label)
	case item.Slug == "" && item.Link == "":
		return fmt.Errorf("%q has neither slug nor link", item.Label)
	}
	return nil
}

// Resolve turns a spec into a sidebar using index as the catalog of pages.
// Group order is preserved. An empty autogenerated directory yields an empty
// group and a warning; every other problem is fatal and no sidebar is
// returned. Resolve only reads from index.
func Resolve(spec Spec, index content.Index, opts ...Option) (*Sidebar, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}
	r := &resolver{index: index}
	for _, opt := range opts {
		opt(r)
	}
	sidebar := &Sidebar{Groups: make([]ResolvedGroup, 0, len(spec))}
	var errs *multierror.Error
	for _, g := range spec {
		resolved, err := r.resolveGroup(g)
		var empty *EmptyDirectoryError
		switch {
		case errors.As(err, &empty):
			klog.Warning(err)
			sidebar.Warnings = append(sidebar.Warnings, err)
		case err != nil:
			errs = multierror.Append(errs, err)
			continue
		}
		sidebar.Groups = append(sidebar.Groups, resolved)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	klog.V(4).Infof("resolved %d sidebar groups with %d links", len(sidebar.Groups), len(sidebar.Links()))
	return sidebar, nil
}

func (r *resolver) resolveGroup(g Group) (ResolvedGroup, error) {
	switch group := g.(type) {
	case ExplicitGroup:
		return r.resolveExplicit(group)
	case AutogeneratedGroup:
		return r.resolveAutogenerated(group)
	}
	return ResolvedGroup{}, fmt.Errorf("unknown group type %T", g)
}

func (r *resolver) resolveExplicit(group ExplicitGroup) (ResolvedGroup, error) {
	resolved := ResolvedGroup{
		Label:     group.Label,
		Links:     make([]Link, 0, len(group.Items)),
		Collapsed: group.Collapsed,
	}
	var errs *multierror.Error
	for _, item := range group.Items {
		if item.Link != "" {
			resolved.Links = append(resolved.Links, Link{Label: item.Label, URL: item.Link})
			continue
		}
		url, err := r.index.URL(item.Slug)
		if err != nil {
			errs = multierror.Append(errs, &UnresolvedSlugError{Group: group.Label, Slug: item.Slug, Err: err})
			continue
		}
		label := item.Label
		if label == "" {
			// a bare slug is labelled like its page
			page, _ := r.index.Page(item.Slug)
			label = page.Label()
		}
		resolved.Links = append(resolved.Links, Link{Label: label, URL: url, Slug: link.Clean(item.Slug)})
	}
	return resolved, errs.ErrorOrNil()
}

func (r *resolver) resolveAutogenerated(group AutogeneratedGroup) (ResolvedGroup, error) {
	resolved := ResolvedGroup{
		Label:         group.Label,
		Links:         []Link{},
		Collapsed:     group.Collapsed,
		Autogenerated: true,
		Directory:     link.Clean(group.Directory),
	}
	pages, ok := r.index.Directory(group.Directory)
	if !ok {
		return resolved, &MissingDirectoryError{Group: group.Label, Directory: group.Directory}
	}
	if len(pages) == 0 {
		return resolved, &EmptyDirectoryError{Group: group.Label, Directory: group.Directory}
	}
	if r.ordering != nil {
		pages = slices.Clone(pages)
		slices.SortStableFunc(pages, r.ordering)
	}
	var errs *multierror.Error
	for _, page := range pages {
		url, err := r.index.URL(page.Path)
		if err != nil {
			errs = multierror.Append(errs, &UnresolvedSlugError{Group: group.Label, Slug: page.Path, Err: err})
			continue
		}
		resolved.Links = append(resolved.Links, Link{Label: page.Label(), URL: url, Slug: page.Path})
	}
	return resolved, errs.ErrorOrNil()
}
