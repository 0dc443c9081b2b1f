package asmscan

import "errors"

// ErrUnexpectedChar is returned when the scanner encounters a
// character that cannot begin or continue any valid token.
var ErrUnexpectedChar = errors.New("asmscan: unexpected character")
