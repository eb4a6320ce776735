package appfs

import "embed"

// IndexPath is the single-page app entry point inside FS.
const IndexPath = "web/index.html"

//go:embed web
var FS embed.FS
