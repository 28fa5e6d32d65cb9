package session

import "errors"

// ErrDeleteRoot is returned when deleting the node that has no parent.
var ErrDeleteRoot = errors.New("cannot delete the only remaining node")
