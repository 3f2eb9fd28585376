package webapp

import _ "embed"

// Stylesheet holds the layout and sidebar rules served at /webapp/webapp.css
//
//go:embed webapp.css
var Stylesheet []byte
