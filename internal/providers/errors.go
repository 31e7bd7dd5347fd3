package providers

import "errors"

// ErrProviderUnavailable indicates a wrapper was constructed without an
// inner provider to delegate to.
var ErrProviderUnavailable = errors.New("schedule provider unavailable")
