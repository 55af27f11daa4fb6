// Package testsupport provides test doubles and fixture helpers shared by
// the package tests.
package testsupport

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/inizio/initt/pkg/prompt"
)

// ScriptDriver implements prompt.PromptDriver with canned answers consumed
// in order. Err, when set, is returned by every call.
type ScriptDriver struct {
	Inputs   []string
	Selects  []int
	Confirms []bool
	Paths    []string
	Err      error

	inputPos   int
	selectPos  int
	confirmPos int
	pathPos    int
}

func (s *ScriptDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.inputPos >= len(s.Inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *ScriptDriver) Confirm(_ context.Context, _ prompt.ConfirmConfig) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	if s.confirmPos >= len(s.Confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.Confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *ScriptDriver) Select(_ context.Context, _ prompt.SelectConfig) (int, error) {
	if s.Err != nil {
		return -1, s.Err
	}
	if s.selectPos >= len(s.Selects) {
		return -1, errors.New("no select scripted")
	}
	val := s.Selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *ScriptDriver) Path(_ context.Context, _ prompt.PathConfig) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.pathPos >= len(s.Paths) {
		return "", errors.New("no path scripted")
	}
	val := s.Paths[s.pathPos]
	s.pathPos++
	return val, nil
}

// FragmentFS builds an in-memory fragment filesystem from a map of
// "template/basename.tpl" to content.
func FragmentFS(files map[string]string) fs.FS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// ListTree returns the sorted relative paths under root, directories
// suffixed with "/". Useful for comparing materialized skeletons.
func ListTree(t *testing.T, root string) []string {
	t.Helper()

	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}

// ReadFile reads a file under root, failing the test on error.
func ReadFile(t *testing.T, root string, parts ...string) string {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether the path assembled from root and parts exists.
func Exists(root string, parts ...string) bool {
	_, err := os.Stat(filepath.Join(append([]string{root}, parts...)...))
	return err == nil
}
