package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID is a backend identifier. The backend sends numeric ids on some resources
// and strings on others, so both decode into the same type.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is blank.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}
