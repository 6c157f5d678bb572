// Package web embeds the static dialpad page served at the site root.
package web

import "embed"

// DistFS holds the static page under dist/.
//
//go:embed dist/*
var DistFS embed.FS
