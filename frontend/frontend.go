// Package frontend embeds the fallback web assets served when no asset
// directory is configured.
package frontend

import (
	"embed"
	"io/fs"
)

//go:embed all:dist
var assets embed.FS

// FS returns the embedded assets rooted at dist.
func FS() (fs.FS, error) {
	return fs.Sub(assets, "dist")
}
