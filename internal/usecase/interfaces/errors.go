package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a record id is reused.
var ErrAlreadyExists = errors.New("record already exists")
