package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// MapFS returns the embedded city map filesystem.
func MapFS() fs.FS {
	return mapFS
}
