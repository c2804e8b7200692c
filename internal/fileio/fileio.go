// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package fileio provides buffered file sources and sinks for the jsonfmt
// tool.
package fileio

import (
	"bufio"
	"errors"
	"os"

	"github.com/creachadair/jsonfmt"
)

// BufferSize is the size in bytes of the buffer used by each Reader and
// Writer.
const BufferSize = 1 << 20

// A Reader is a buffered reader for the contents of a file.
type Reader struct {
	*bufio.Reader
	f *os.File
}

// Open opens the named file for reading. It reports an error of kind IOError
// if the file cannot be opened.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, jsonfmt.NewIOError(err)
	}
	return &Reader{Reader: bufio.NewReaderSize(f, BufferSize), f: f}, nil
}

// Name reports the name of the file underlying r.
func (r *Reader) Name() string { return r.f.Name() }

// Close closes the underlying file.
func (r *Reader) Close() error {
	if err := r.f.Close(); err != nil {
		return jsonfmt.NewIOError(err)
	}
	return nil
}

// A Writer is a buffered writer for the contents of a file. The caller must
// call Close to flush buffered output.
type Writer struct {
	*bufio.Writer
	f *os.File
}

// Create creates or truncates the named file for writing. It reports an error
// of kind IOError if the file cannot be created.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, jsonfmt.NewIOError(err)
	}
	return &Writer{Writer: bufio.NewWriterSize(f, BufferSize), f: f}, nil
}

// Name reports the name of the file underlying w.
func (w *Writer) Name() string { return w.f.Name() }

// Close flushes buffered output and closes the underlying file. The file is
// closed even if the flush fails.
func (w *Writer) Close() error {
	ferr := w.Flush()
	cerr := w.f.Close()
	if err := errors.Join(ferr, cerr); err != nil {
		return jsonfmt.NewIOError(err)
	}
	return nil
}
