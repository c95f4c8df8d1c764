// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates Writers recording to the
	// same backend but for different roots
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path    string
	content []byte
}

type writer struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// recording files for different roots on the same backend
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root: root,
		d:    d,
	}
}

func (w *writer) Write(name, path string, content []byte) error {
	p := strings.Join(slices.DeleteFunc([]string{w.root, path, name}, func(s string) bool {
		return s == "" || s == "."
	}), "/")
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, &file{path: p, content: content})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer: the projected file hierarchy
// followed by the content of each file
func (d *dryRunWriter) Flush() error {
	d.mux.Lock()
	defer d.mux.Unlock()
	var b bytes.Buffer
	slices.SortFunc(d.files, func(a, b *file) int { return strings.Compare(a.path, b.path) })
	format(d.files, &b)
	for _, f := range d.files {
		b.WriteString(fmt.Sprintf("\n--- %s\n", f.path))
		b.Write(f.content)
		if len(f.content) > 0 && !bytes.HasSuffix(f.content, []byte("\n")) {
			b.WriteString("\n")
		}
	}
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]struct{}{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if _, ok := all[p]; ok {
				continue
			}
			all[p] = struct{}{}
			b.Write(bytes.Repeat([]byte("  "), i))
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
