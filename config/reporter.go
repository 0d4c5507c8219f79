package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"lensconv/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare opens report archive at configured destination, falling back to a
// temporary file.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{file: f, entries: map[string]entry{}}, nil
}

// entry is either a file to be copied on Close or data captured right away.
type entry struct {
	path  string
	stamp time.Time
	data  []byte
}

// Report collects debugging artifacts: logs, configuration and conversion
// results. Nil Report is valid and ignores everything. Not safe for
// concurrent use.
type Report struct {
	file    *os.File
	entries map[string]entry
}

// Name returns absolute path of report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	name := r.file.Name()
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	return name
}

// Store schedules file at path to be archived as name. Registering a
// different file under the same name is a programming error.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if prev, ok := r.entries[name]; ok && prev.path != path {
		panic(fmt.Sprintf("report entry %q already refers to %s, not %s", name, prev.path, path))
	}
	r.entries[name] = entry{path: path}
}

// StoreData archives copy of data as name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, ok := r.entries[name]; ok {
		panic(fmt.Sprintf("report entry %q already exists", name))
	}
	r.entries[name] = entry{data: bytes.Clone(data), stamp: time.Now()}
}

// Close writes MANIFEST followed by all entries in natural order of their
// names. Files which no longer exist are left out.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}
	defer multierr.AppendInvoke(&err, multierr.Close(r.file))

	names := slices.Collect(maps.Keys(r.entries))
	sort.Sort(natural.StringSlice(names))

	now := time.Now()
	zw := zip.NewWriter(r.file)
	if err := addToArchive(zw, "MANIFEST", now, bytes.NewReader(r.manifest(names, now))); err != nil {
		return err
	}
	for _, name := range names {
		e := r.entries[name]
		if e.data == nil {
			err = addFileToArchive(zw, name, e.path)
		} else {
			err = addToArchive(zw, name, e.stamp, bytes.NewReader(e.data))
		}
		if err != nil {
			return fmt.Errorf("unable to archive %s: %w", name, err)
		}
	}
	return zw.Close()
}

func (r *Report) manifest(names []string, now time.Time) []byte {
	var buf bytes.Buffer
	for _, name := range names {
		e := r.entries[name]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", e.stamp.UTC().Format(time.UnixDate), name, e.path)
	}
	return buf.Bytes()
}

func addFileToArchive(zw *zip.Writer, name, path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return addToArchive(zw, name, fi.ModTime(), f)
}

func addToArchive(zw *zip.Writer, name string, modified time.Time, src io.Reader) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
