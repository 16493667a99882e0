package fragment

import "errors"

// ErrUnsupportedType is returned by [FromAny] and [FromMap] when a decoded
// value has a Go type that cannot be represented in a configuration tree.
var ErrUnsupportedType = errors.New("unsupported configuration value type")
