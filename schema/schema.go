package schema

import (
	"encoding/json"
	"fmt"
)

// Schema is message schema interface
type Schema interface {
	// Attachment() returns schema attachment
	Attachment() *Attachment
}

// Stringify renders a schema as message content.
// Plain strings and fmt.Stringer implementations are used verbatim, anything else is JSON encoded.
func Stringify(s Schema) string {
	switch v := s.(type) {
	case nil:
		return ""
	case String:
		return string(v)
	case *String:
		if v == nil {
			return ""
		}
		return string(*v)
	case fmt.Stringer:
		return v.String()
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}
