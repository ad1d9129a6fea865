// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document handles the files the converter works with: .mdx
// documentation in, .mdc rule files out.
package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DocExt is the extension of source documentation files.
	DocExt = ".mdx"
	// RuleExt is the extension of generated rule files.
	RuleExt = ".mdc"
)

// Read loads a documentation file and returns its content. It rejects
// files that are not valid UTF-8 and files with no non-whitespace content.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %s is not valid UTF-8", path)
	}
	content := string(data)
	if err := Validate(content); err != nil {
		return "", fmt.Errorf("document %s: %w", path, err)
	}
	return content, nil
}

// Validate reports whether content is usable as conversion input.
// Empty or whitespace-only content is rejected.
func Validate(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is empty")
	}
	return nil
}

// Discover returns the documentation files directly inside dir, sorted by
// name. Subdirectories are not searched. A missing or empty directory
// yields an empty slice, not an error.
func Discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+DocExt))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// DiscoverRecursive returns every documentation file under root, walking
// subdirectories. Paths come back in lexical walk order.
func DiscoverRecursive(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), DocExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

// RuleFileName derives the output file name for a documentation path:
// the base name with its extension dropped, underscores replaced by
// hyphens, lowercased, with the rule extension appended.
// "My_Doc_Name.mdx" becomes "my-doc-name.mdc".
func RuleFileName(docPath string) string {
	base := filepath.Base(docPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.ToLower(strings.ReplaceAll(stem, "_", "-"))
	return stem + RuleExt
}

// WriteRule writes rule content to path, creating parent directories as
// needed. An existing file at path is overwritten.
func WriteRule(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing rule file: %w", err)
	}
	return nil
}
