package facade

import "errors"

// ErrCoreExists is returned by Cores.NewCore when the key is already live.
var ErrCoreExists = errors.New("core already exists")
