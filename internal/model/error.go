package model

import "errors"

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownChoice   = errors.New("unknown menu choice")
)
