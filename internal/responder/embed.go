package responder

import _ "embed"

// defaultTable is the built-in response table used when no override file
// is configured.
//
//go:embed responses.yaml
var defaultTable []byte
