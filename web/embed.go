package web

import "embed"

// StaticFS holds the embedded frontend.
//
//go:embed static
var StaticFS embed.FS
