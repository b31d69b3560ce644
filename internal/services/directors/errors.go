package directors

import "errors"

var ErrDirectorNotFound = errors.New("director not found")
