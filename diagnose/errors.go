package diagnose

import "errors"

// ErrNoImplementation indicates no class in obj's mixins or hierarchy
// implements the requested method.
var ErrNoImplementation = errors.New("diagnose: no class implements the requested method")
