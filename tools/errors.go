package tools

import "errors"

var (
	// ErrUnknownTool is returned when the model calls a function which is not registered
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidArguments is returned when function arguments can not be decoded or validated
	ErrInvalidArguments = errors.New("invalid tool arguments")
	// ErrInvalidSchema is returned when an anonymous call receives an unexpected input schema
	ErrInvalidSchema = errors.New("invalid tool input schema")
)
