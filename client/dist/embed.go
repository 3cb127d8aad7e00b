// Package clientdist embeds the thin client JavaScript bundle.
package clientdist

import _ "embed"

// VeltaJS is the thin client JavaScript bundle.
//
// It is served by the framework at "/_velta/client.js".
//
//go:embed velta.js
var VeltaJS []byte
