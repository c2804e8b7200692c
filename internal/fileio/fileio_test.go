// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package fileio_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jsonfmt"
	"github.com/creachadair/jsonfmt/internal/fileio"
	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	const text = `{"a": [1, 2, 3]}`

	w, err := fileio.Create(path)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if _, err := w.WriteString(text); err != nil {
		t.Fatalf("WriteString: unexpected error: %v", err)
	}

	// Nothing reaches the file until the buffer is flushed.
	if data, err := os.ReadFile(path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	} else if len(data) != 0 {
		t.Errorf("Before Close: got %q, want empty", data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}

	r, err := fileio.Open(path)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	defer r.Close()
	if r.Name() != path {
		t.Errorf("Name: got %q, want %q", r.Name(), path)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: unexpected error: %v", err)
	}
	if diff := cmp.Diff(text, string(got)); diff != "" {
		t.Errorf("Contents (-want, +got):\n%s", diff)
	}
}

func TestOpenMissing(t *testing.T) {
	r, err := fileio.Open(filepath.Join(t.TempDir(), "nonesuch.json"))
	if err == nil {
		r.Close()
		t.Fatal("Open: got nil error, want failure")
	}
	if !errors.Is(err, jsonfmt.ErrIO) {
		t.Errorf("Open: got %v, want %v", err, jsonfmt.ErrIO)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open: got %v, want %v", err, os.ErrNotExist)
	}
}

func TestCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")
	if w, err := fileio.Create(path); err == nil {
		w.Close()
		t.Fatal("Create: got nil error, want failure")
	} else if !errors.Is(err, jsonfmt.ErrIO) {
		t.Errorf("Create: got %v, want %v", err, jsonfmt.ErrIO)
	}
}
