// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Build builds a link given its elements
func Build(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", nil
	}
	jointPath, err := url.JoinPath(elem[0], elem[1:]...)
	if err != nil {
		return "", fmt.Errorf("failed to join paths: %w", err)
	}
	if jointPath == "" {
		return ".", nil
	}
	escapedQuery, err := url.QueryUnescape(jointPath)
	if err != nil {
		return "", fmt.Errorf("failed to unescape joint path: %w", err)
	}
	return strings.ReplaceAll(escapedQuery, " ", "%20"), nil
}

// Clean normalizes a content path: forward slashes, no leading or
// trailing slash, "." segments collapsed. The content root is "".
func Clean(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	p = strings.Trim(path.Clean("/"+p), "/")
	return p
}

// Pretty returns the root-relative pretty URL of slug under base,
// e.g. ("/docs/", "guides/example") -> "/docs/guides/example/"
func Pretty(base, slug string) (string, error) {
	base = "/" + strings.Trim(base, "/")
	slug = Clean(slug)
	if slug == "" {
		if base == "/" {
			return base, nil
		}
		return base + "/", nil
	}
	return Build(base, slug, "/")
}
