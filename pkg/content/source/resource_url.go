// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gardener/navforge/pkg/internal/link"
	"github.com/gardener/navforge/pkg/internal/must"
)

var resource = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/(tree|blob)/([^/]+)/?([^\?#]*)`)

// IsResourceURL checks if link is a repository resource URL
func IsResourceURL(link string) bool {
	return resource.MatchString(link)
}

// URL represents a tree or blob url of a repository
type URL struct {
	host         string
	owner        string
	repo         string
	resourceType string
	ref          string
	resourcePath string
}

// NewURL parses a repository resource url,
// e.g. https://github.com/org/repo/tree/main/src/content/docs
func NewURL(resourceURL string) (*URL, error) {
	u, err := url.Parse(resourceURL)
	if err != nil {
		return nil, err
	}
	components := resource.FindStringSubmatch(u.String())
	if components == nil {
		return nil, fmt.Errorf("%s is not a resource URL", resourceURL)
	}
	return &URL{
		host:         components[1],
		owner:        components[2],
		repo:         components[3],
		resourceType: components[4],
		ref:          components[5],
		resourcePath: strings.Trim(components[6], "/"),
	}, nil
}

// String returns the full url
func (r URL) String() string {
	if r.resourcePath == "" {
		return must.Succeed(link.Build("https://", r.host, r.owner, r.repo, r.resourceType, r.ref))
	}
	return must.Succeed(link.Build("https://", r.host, r.owner, r.repo, r.resourceType, r.ref, r.resourcePath))
}

// CloneURL returns the https git url of the repository
func (r URL) CloneURL() string {
	return fmt.Sprintf("https://%s/%s/%s.git", r.host, r.owner, r.repo)
}

// GetHost returns the host of the URL
func (r URL) GetHost() string {
	return r.host
}

// GetOwner returns the owner of the URL
func (r URL) GetOwner() string {
	return r.owner
}

// GetRepo returns the repository of the URL
func (r URL) GetRepo() string {
	return r.repo
}

// GetResourceType returns the resource type of the URL
func (r URL) GetResourceType() string {
	return r.resourceType
}

// GetRef returns the reference of the URL
func (r URL) GetRef() string {
	return r.ref
}

// GetResourcePath returns the resource path of the URL
func (r URL) GetResourcePath() string {
	return r.resourcePath
}
