// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gardener/navforge/pkg/osfakes/osshim"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"k8s.io/klog/v2"
)

// CacheDir is the directory under the cache home repositories are cloned into
const CacheDir = "git"

// Clone makes a shallow clone of the repository of a tree url into cacheHome,
// or fast-forwards an existing clone, and returns the tree as a Local source
func Clone(ctx context.Context, shim osshim.Os, treeURL string, cacheHome string, user string, token string) (*Local, error) {
	u, err := NewURL(treeURL)
	if err != nil {
		return nil, err
	}
	if u.GetResourceType() != "tree" {
		return nil, fmt.Errorf("expected a tree url got %s", treeURL)
	}
	repoPath := filepath.Join(cacheHome, CacheDir, u.GetHost(), u.GetOwner(), u.GetRepo(), u.GetRef())
	var auth *http.BasicAuth
	if token != "" {
		auth = &http.BasicAuth{Username: user, Password: token}
	}
	repository, err := git.PlainOpen(repoPath)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		klog.Infof("Cloning %s into %s", u.CloneURL(), repoPath)
		opts := &git.CloneOptions{
			URL:           u.CloneURL(),
			ReferenceName: plumbing.NewBranchReferenceName(u.GetRef()),
			SingleBranch:  true,
			Depth:         1,
		}
		if auth != nil {
			opts.Auth = auth
		}
		if _, err = git.PlainCloneContext(ctx, repoPath, false, opts); err != nil {
			return nil, fmt.Errorf("cloning %s failed: %w", u.CloneURL(), err)
		}
	case err != nil:
		return nil, fmt.Errorf("opening repository %s failed: %w", repoPath, err)
	default:
		if err := pull(ctx, repository, u, auth); err != nil {
			return nil, err
		}
	}
	return NewLocalDir(shim, filepath.Join(repoPath, filepath.FromSlash(u.GetResourcePath())))
}

func pull(ctx context.Context, repository *git.Repository, u *URL, auth *http.BasicAuth) error {
	worktree, err := repository.Worktree()
	if err != nil {
		return err
	}
	opts := &git.PullOptions{
		ReferenceName: plumbing.NewBranchReferenceName(u.GetRef()),
		SingleBranch:  true,
		Depth:         1,
	}
	if auth != nil {
		opts.Auth = auth
	}
	err = worktree.PullContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		klog.V(6).Infof("%s is up to date", u.CloneURL())
		return nil
	}
	if err != nil {
		return fmt.Errorf("pulling %s failed: %w", u.CloneURL(), err)
	}
	return nil
}
