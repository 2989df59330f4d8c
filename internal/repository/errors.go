package repository

import "errors"

// ErrInsufficientStock is returned by conditional stock decrements that find
// fewer units than requested.
var ErrInsufficientStock = errors.New("insufficient stock")
