// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package source

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gardener/navforge/pkg/content"
	"github.com/google/go-github/v43/github"
	"k8s.io/klog/v2"
)

//counterfeiter:generate . Git

// Git is an interface needed for faking
type Git interface {
	GetBlobRaw(ctx context.Context, owner, repo, sha string) ([]byte, *github.Response, error)
	GetTree(ctx context.Context, owner string, repo string, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

// GitHub is a content tree in a GitHub repository, addressed by a tree url
type GitHub struct {
	git  Git
	tree URL

	mux  sync.Mutex
	shas map[string]string
}

// NewGitHub creates a content source for a GitHub tree url,
// e.g. https://github.com/org/repo/tree/main/src/content/docs
func NewGitHub(git Git, treeURL string) (*GitHub, error) {
	u, err := NewURL(treeURL)
	if err != nil {
		return nil, err
	}
	if u.GetResourceType() != "tree" {
		return nil, fmt.Errorf("expected a tree url got %s", treeURL)
	}
	return &GitHub{git: git, tree: *u}, nil
}

// Tree lists the entries beneath the tree url path.
// The repository tree is fetched once and reused by Read.
func (g *GitHub) Tree(ctx context.Context) ([]content.Entry, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	tree, resp, err := g.git.GetTree(ctx, g.tree.GetOwner(), g.tree.GetRepo(), g.tree.GetRef(), true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrResourceNotFound(g.tree.String())
		}
		return nil, err
	}
	if tree.GetTruncated() {
		klog.Warningf("tree of %s is truncated, some pages may be missing", g.tree.String())
	}
	prefix := ""
	if g.tree.GetResourcePath() != "" {
		prefix = g.tree.GetResourcePath() + "/"
	}
	g.shas = map[string]string{}
	entries := []content.Entry{}
	for _, entry := range tree.Entries {
		if !strings.HasPrefix(entry.GetPath(), prefix) {
			continue
		}
		p := strings.TrimPrefix(entry.GetPath(), prefix)
		if p == "" || strings.HasPrefix(path.Base(p), ".") {
			continue
		}
		switch entry.GetType() {
		case "tree":
			entries = append(entries, content.Entry{Path: p, Dir: true})
		case "blob":
			entries = append(entries, content.Entry{Path: p})
			g.shas[p] = entry.GetSHA()
		}
	}
	klog.Infof("Loading %s with %d entries", g.tree.String(), len(entries))
	return entries, nil
}

// Read a file content from the repository
func (g *GitHub) Read(ctx context.Context, p string) ([]byte, error) {
	g.mux.Lock()
	sha, ok := g.shas[p]
	g.mux.Unlock()
	if !ok {
		return nil, ErrResourceNotFound(fmt.Sprintf("%s/%s", g.tree.String(), p))
	}
	raw, resp, err := g.git.GetBlobRaw(ctx, g.tree.GetOwner(), g.tree.GetRepo(), sha)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrResourceNotFound(fmt.Sprintf("%s/%s", g.tree.String(), p))
		}
		return nil, err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return nil, fmt.Errorf("reading blob %s fails with HTTP status: %d", p, resp.StatusCode)
	}
	return raw, nil
}
