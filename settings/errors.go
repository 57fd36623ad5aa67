package settings

import "errors"

// ErrInvalidConfiguration wraps any missing/ill-formed settings value or
// unknown enum token.
var ErrInvalidConfiguration = errors.New("settings: invalid configuration")
