package shapecheck

import "errors"

// ErrJSON tells that value has invalid JSON format.
var ErrJSON = errors.New("invalid JSON format")

// ErrYAML tells that value has invalid YAML format.
var ErrYAML = errors.New("invalid YAML format")

// ErrUnknownFormat tells that requested data format has no registered service.
var ErrUnknownFormat = errors.New("unknown data format")
