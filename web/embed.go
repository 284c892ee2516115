// Package web embeds the static upload UI so the serve command ships as
// a single binary.
package web

import "embed"

// StaticFS holds the embedded upload form assets (HTML, CSS, JS).
//
//go:embed static
var StaticFS embed.FS
