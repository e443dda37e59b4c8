// Copyright (c) 2025-2026 Davi Ramos
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the site's templates, static assets and default data.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templatesFS embed.FS

//go:embed all:static
var staticFS embed.FS

// ProjectsJSON is the built-in featured projects catalog.
//
//go:embed data/projects.json
var ProjectsJSON []byte

// Templates returns the HTML templates rooted at the templates directory.
func Templates() fs.FS {
	return mustSub(templatesFS, "templates")
}

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	return mustSub(staticFS, "static")
}

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// fs.Sub only fails for invalid paths
		panic(err)
	}
	return sub
}
