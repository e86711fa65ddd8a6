package tilemap

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("tilemap: expected a JSON object")

// field is one member of an object, value kept verbatim.
type field struct {
	key string
	val json.RawMessage
}

// object is a JSON object that remembers the order of its keys.
type object []field

// get returns the value under key, or nil.
func (o object) get(key string) json.RawMessage {
	for _, f := range o {
		if f.key == key {
			return f.val
		}
	}
	return nil
}

// set replaces the value under key, appending the key when absent.
func (o *object) set(key string, val json.RawMessage) {
	for i := range *o {
		if (*o)[i].key == key {
			(*o)[i].val = val
			return
		}
	}
	*o = append(*o, field{key: key, val: val})
}

// UnmarshalJSON reads the members of a JSON object in source order.
func (o *object) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}

	fields := object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errNotObject
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return err
		}
		fields = append(fields, field{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = fields
	return nil
}

// MarshalJSON writes the members back in the order they were read.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
