// Package web holds the browser UI served by the API at every non-API path.
package web

import "embed"

// Assets contains index.html and any files next to it
//
//go:embed index.html
var Assets embed.FS
