package model

import "errors"

var (
	ErrOutOfOrder      = errors.New("answer does not match the current question")
	ErrNoSession       = errors.New("no quiz in progress")
	ErrMissingToken    = errors.New("BOT_TOKEN is not set")
	ErrEmptyCatalog    = errors.New("content catalog is empty")
	ErrUnknownStorage  = errors.New("unknown storage backend")
	ErrInvalidSnapshot = errors.New("stored answers snapshot is invalid")
)
