package webhook

import (
	"encoding"
	"errors"
	"strings"
)

// ContentType is the type of content that will be sent in a webhook request.
type ContentType int8

const (
	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON ContentType = iota
	// ContentTypeForm is the form content type.
	ContentTypeForm
)

var contentTypeStrings = map[ContentType]string{
	ContentTypeJSON: "application/json",
	ContentTypeForm: "application/x-www-form-urlencoded",
}

// String returns the MIME type of the content type.
func (c ContentType) String() string {
	return contentTypeStrings[c]
}

var contentTypeNames = map[ContentType]string{
	ContentTypeJSON: "json",
	ContentTypeForm: "urlencoded",
}

// Name returns the configuration name of the content type.
func (c ContentType) Name() string {
	return contentTypeNames[c]
}

// ErrInvalidContentType is returned when the content type is invalid.
var ErrInvalidContentType = errors.New("invalid content type")

// ParseContentType parses a content type, either its configuration name
// ("json", "urlencoded") or its MIME type.
func ParseContentType(s string) (ContentType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for ct, name := range contentTypeNames {
		if s == name {
			return ct, nil
		}
	}
	for ct, mime := range contentTypeStrings {
		if s == mime || strings.HasPrefix(s, mime+";") {
			return ct, nil
		}
	}

	return -1, ErrInvalidContentType
}

// ParseContentTypeName parses a configuration name, "json" or "urlencoded".
// The name must match exactly.
func ParseContentTypeName(s string) (ContentType, error) {
	for ct, name := range contentTypeNames {
		if s == name {
			return ct, nil
		}
	}

	return -1, ErrInvalidContentType
}

var (
	_ encoding.TextMarshaler   = ContentType(0)
	_ encoding.TextUnmarshaler = (*ContentType)(nil)
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContentType) UnmarshalText(text []byte) error {
	ct, err := ParseContentType(string(text))
	if err != nil {
		return err
	}

	*c = ct
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c ContentType) MarshalText() (text []byte, err error) {
	name := c.Name()
	if name == "" {
		return nil, ErrInvalidContentType
	}

	return []byte(name), nil
}
