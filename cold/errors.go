package cold

import "errors"

// ErrInvalidUTF8 indicates construction input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("cold: invalid UTF-8")
