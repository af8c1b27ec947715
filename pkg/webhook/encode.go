package webhook

import (
	"bytes"
	"encoding/json"
)

// Encode serializes a payload in the given content type. JSON output has a
// fixed field order and form output follows Flatten, so encoding the same
// payload twice yields the same bytes.
func Encode(ct ContentType, payload interface{}) ([]byte, error) {
	switch ct {
	case ContentTypeJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case ContentTypeForm:
		return EncodeForm(payload)
	default:
		return nil, ErrInvalidContentType
	}
}
