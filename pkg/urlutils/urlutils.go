// Package urlutils holds utilities for working with URLs.
package urlutils

import (
	"fmt"
	"net/url"
)

// URLValidator has ability to validate URL.
type URLValidator struct{}

func NewURLValidator() URLValidator { return URLValidator{} }

// Validate checks whether in is valid URL.
func (u URLValidator) Validate(in any) error {
	source, ok := in.(string)
	if !ok {
		return fmt.Errorf("%+v is not string", in)
	}

	parsed, err := url.ParseRequestURI(source)
	if err == nil {
		if parsed.Scheme != "" && parsed.Host != "" {
			return nil
		}
	}

	return fmt.Errorf("%s is invalid URL", source)
}
