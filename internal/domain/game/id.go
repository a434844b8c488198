package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID references a chat user, channel or message.
// Documents store them as JSON numbers; strings are accepted too.
type ID string

// NoID is the zero ID, stored as null
const NoID ID = ""

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset
func (id ID) IsZero() bool {
	return id == NoID
}

// numeric reports whether id is a canonical JSON integer: digits only and
// no leading zero unless it is "0"
func (id ID) numeric() bool {
	if id == "" {
		return false
	}
	if len(id) > 1 && id[0] == '0' {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalJSON writes numeric ids as numbers so existing documents round-trip.
// Anything else, "0123" included, is written as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id == NoID:
		return []byte("null"), nil
	case id.numeric():
		return []byte(id), nil
	default:
		return json.Marshal(string(id))
	}
}

// UnmarshalJSON accepts a JSON number, a JSON string or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = NoID
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	candidate := ID(data)
	if !candidate.numeric() {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = candidate
	return nil
}

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID deletes id keeping order; reports whether it was present
func removeID(ids []ID, id ID) ([]ID, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
