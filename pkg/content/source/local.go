// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/gardener/navforge/pkg/content"
	"github.com/gardener/navforge/pkg/osfakes/osshim"
)

// Local is a content tree on a file system
type Local struct {
	fsys fs.FS
	name string
}

// NewLocal creates a content source reading the root directory of fsys
func NewLocal(fsys fs.FS, name string) *Local {
	return &Local{fsys: fsys, name: name}
}

// NewLocalDir creates a content source reading dir from the operating system file system
func NewLocalDir(shim osshim.Os, dir string) (*Local, error) {
	isDir, err := shim.IsDir(dir)
	if err != nil {
		if shim.IsNotExist(err) {
			return nil, ErrResourceNotFound(dir)
		}
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return NewLocal(shim.DirFS(dir), dir), nil
}

// Tree walks the file system. Dot files and directories are skipped.
func (l *Local) Tree(ctx context.Context) ([]content.Entry, error) {
	entries := []content.Entry{}
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if strings.HasPrefix(path.Base(p), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		entries = append(entries, content.Entry{Path: p, Dir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s failed: %w", l.name, err)
	}
	return entries, nil
}

// Read a file content into a byte array
func (l *Local) Read(_ context.Context, p string) ([]byte, error) {
	cnt, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrResourceNotFound(path.Join(l.name, p))
		}
		return nil, fmt.Errorf("reading file %s fails: %w", path.Join(l.name, p), err)
	}
	return cnt, nil
}

// Name returns the name of the file system
func (l *Local) Name() string {
	return l.name
}
