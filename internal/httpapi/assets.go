package httpapi

import _ "embed"

// unknownPNG is served when a save has no world icon yet.
//
//go:embed assets/unknown.png
var unknownPNG []byte
