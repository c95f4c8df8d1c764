// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import "fmt"

// MissingDirectoryError is raised when an autogenerated group references a
// directory the content index does not know. It is fatal.
type MissingDirectoryError struct {
	Group     string
	Directory string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("group %q: directory %q does not exist in content", e.Group, e.Directory)
}

// EmptyDirectoryError is raised when an autogenerated group references a
// directory without pages. It is recoverable, the group is rendered empty.
type EmptyDirectoryError struct {
	Group     string
	Directory string
}

func (e *EmptyDirectoryError) Error() string {
	return fmt.Sprintf("group %q: directory %q has no pages", e.Group, e.Directory)
}

// UnresolvedSlugError is raised when no page exists for the slug of an
// explicit item. It is fatal.
type UnresolvedSlugError struct {
	Group string
	Slug  string
	Err   error
}

func (e *UnresolvedSlugError) Error() string {
	return fmt.Sprintf("group %q: slug %q does not resolve to a page: %v", e.Group, e.Slug, e.Err)
}

func (e *UnresolvedSlugError) Unwrap() error {
	return e.Err
}

// GroupSourceError is raised for a group declaring both items and
// autogenerate, or neither of them. It is fatal.
type GroupSourceError struct {
	Group string
	// Sources are the content sources the group declared
	Sources []string
}

func (e *GroupSourceError) Error() string {
	if len(e.Sources) == 0 {
		return fmt.Sprintf("group %q declares neither items nor autogenerate", e.Group)
	}
	return fmt.Sprintf("group %q declares both items and autogenerate, only one is allowed", e.Group)
}

// InvalidGroupError is raised for a malformed group declaration. It is fatal.
type InvalidGroupError struct {
	Group  string
	Reason string
}

func (e *InvalidGroupError) Error() string {
	if e.Group == "" {
		return fmt.Sprintf("group: %s", e.Reason)
	}
	return fmt.Sprintf("group %q: %s", e.Group, e.Reason)
}
