package gridlog

import "errors"

// ErrUnknownLevel is returned by ParseLevel for any spelling other than
// "silent", "quiet", or "verbose".
var ErrUnknownLevel = errors.New("gridlog: unknown level")
