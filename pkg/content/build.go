// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/gardener/navforge/pkg/jobs"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// ContentFileFormats are the file extensions read as pages
var ContentFileFormats = []string{".md", ".mdx"}

// Entry is an element of a content tree
type Entry struct {
	// Path relative to the content root, forward slash separated
	Path string
	// Dir is true for directories
	Dir bool
}

// Source gives access to a content tree
//
//counterfeiter:generate . Source
type Source interface {
	// Tree lists the files and directories of the content tree
	Tree(ctx context.Context) ([]Entry, error)
	// Read returns the content of the file at path
	Read(ctx context.Context, path string) ([]byte, error)
}

// DefaultReadWorkers is the number of content files read in parallel
const DefaultReadWorkers = 10

// BuildOption configures Build
type BuildOption func(*builder)

// WithReadWorkers sets how many content files are read in parallel
func WithReadWorkers(n int) BuildOption {
	return func(b *builder) {
		if n > 0 {
			b.readWorkers = n
		}
	}
}

// WithIndexOptions passes options to the built index
func WithIndexOptions(opts ...IndexOption) BuildOption {
	return func(b *builder) {
		b.indexOpts = append(b.indexOpts, opts...)
	}
}

type builder struct {
	readWorkers int
	indexOpts   []IndexOption
}

// readTask is the unit of work for reading one content file. Results are
// stored by position so the outcome does not depend on scheduling.
type readTask struct {
	file string
	page *Page
	err  *error
}

// Build reads every content file of source and indexes it.
// All files are read before failing, reporting every broken page at once.
func Build(ctx context.Context, source Source, opts ...BuildOption) (*MemoryIndex, error) {
	b := &builder{readWorkers: DefaultReadWorkers}
	for _, opt := range opts {
		opt(b)
	}
	entries, err := source.Tree(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing content tree failed: %w", err)
	}
	var (
		files []string
		dirs  []string
	)
	for _, entry := range entries {
		if entry.Dir {
			dirs = append(dirs, entry.Path)
			continue
		}
		if !IsContentFile(entry.Path) {
			klog.V(6).Infof("skipping %s, not a content file", entry.Path)
			continue
		}
		files = append(files, entry.Path)
	}
	pages := make([]Page, len(files))
	readErrs := make([]error, len(files))
	tasks := make([]interface{}, len(files))
	for i, file := range files {
		tasks[i] = &readTask{file: file, page: &pages[i], err: &readErrs[i]}
	}
	job := &jobs.Job{
		MinWorkers: 1,
		MaxWorkers: b.readWorkers,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			t := task.(*readTask)
			*t.page, *t.err = readPage(ctx, source, t.file)
			return nil
		}),
	}
	if err := job.Dispatch(ctx, tasks); err != nil {
		return nil, err
	}
	var errs *multierror.Error
	for _, err := range readErrs {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	idx, err := NewIndex(pages, dirs, b.indexOpts...)
	if err != nil {
		return nil, err
	}
	klog.Infof("Indexed %d pages in %d directories", idx.Len(), len(idx.Directories()))
	return idx, nil
}

func readPage(ctx context.Context, source Source, file string) (Page, error) {
	data, err := source.Read(ctx, file)
	if err != nil {
		return Page{}, fmt.Errorf("reading %s failed: %w", file, err)
	}
	fm, err := Frontmatter(data)
	if err != nil {
		return Page{}, fmt.Errorf("parsing front matter of %s failed: %w", file, err)
	}
	return NewPage(file, fm)
}

// IsContentFile reports whether file has one of the ContentFileFormats extensions
func IsContentFile(file string) bool {
	return slices.Contains(ContentFileFormats, strings.ToLower(path.Ext(file)))
}
