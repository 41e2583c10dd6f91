package assets

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css static/*.svg
var staticFS embed.FS

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
