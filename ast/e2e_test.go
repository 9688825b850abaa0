// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jcheck/ast"
)

func testFiles(t *testing.T, dir string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", dir, "*.json"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	} else if len(paths) == 0 {
		t.Fatalf("No test files found in %q", dir)
	}
	return paths
}

func TestValidFiles(t *testing.T) {
	for _, path := range testFiles(t, "valid") {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if _, err := ast.Check(data); err != nil {
				t.Errorf("Check %s: unexpected error: %v", path, err)
			}
		})
	}
}

func TestInvalidFiles(t *testing.T) {
	for _, path := range testFiles(t, "invalid") {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if v, err := ast.Check(data); err == nil {
				t.Errorf("Check %s: got %v, want error", path, v)
			} else {
				t.Logf("Check %s: got expected error: %v", path, err)
			}
		})
	}
}
