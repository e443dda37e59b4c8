// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SafeJoinPath joins name onto basePath and rejects results that escape
// basePath, e.g. "../../etc/passwd".
func SafeJoinPath(basePath, name string) (string, error) {
	if name == "" || ContainsPathTraversal(name) {
		return "", fmt.Errorf("invalid path %q", name)
	}

	absBase, err := filepath.Abs(filepath.Clean(basePath))
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	full := filepath.Join(absBase, name)

	// Trailing separator prevents /media-other matching base /media.
	if full != absBase && !strings.HasPrefix(full, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected: %q escapes base directory", name)
	}
	return full, nil
}

// ContainsPathTraversal reports whether path still contains ".." after cleaning.
func ContainsPathTraversal(path string) bool {
	cleaned := filepath.ToSlash(filepath.Clean(path))
	return cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.Contains(cleaned, "/../") ||
		strings.HasPrefix(cleaned, "/")
}
