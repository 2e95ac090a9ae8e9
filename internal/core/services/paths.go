package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ListingPath returns the link for the listing page in dir: the directory
// relative to renderRoot with a trailing slash. The root listing maps to
// the bare prefix.
func ListingPath(prefix, renderRoot, dir string) (string, error) {
	rel, err := filepath.Rel(renderRoot, dir)
	if err != nil {
		return "", fmt.Errorf("relative listing path: %w", err)
	}
	if rel == "." {
		return joinLink(prefix, ""), nil
	}
	return joinLink(prefix, filepath.ToSlash(rel)+"/"), nil
}

// RenderPath maps a source PDF onto its sibling HTML page in the rendered
// tree, relative to that tree.
func RenderPath(prefix, sourceRoot, file string) (string, error) {
	rel, err := filepath.Rel(sourceRoot, file)
	if err != nil {
		return "", fmt.Errorf("relative render path: %w", err)
	}
	return joinLink(prefix, filepath.ToSlash(trimExt(rel)+".html")), nil
}

// BodyPath returns the link for a rendered HTML document.
func BodyPath(prefix, renderRoot, file string) (string, error) {
	rel, err := filepath.Rel(renderRoot, file)
	if err != nil {
		return "", fmt.Errorf("relative body path: %w", err)
	}
	return joinLink(prefix, filepath.ToSlash(rel)), nil
}

func joinLink(prefix, p string) string {
	if prefix == "" {
		return p
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + p
}

// sameDir reports whether a and b name the same directory.
func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// trimExt returns name without its final extension.
func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
