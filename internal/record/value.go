package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which shape a Value holds.
type Kind int

const (
	// KindAbsent is the zero Value: the field is missing or null.
	KindAbsent Kind = iota
	// KindScalar is a plain text value.
	KindScalar
	// KindShortLong is a {"short": ..., "long": ...} pair.
	KindShortLong
)

// Value is a single field value of a tool record.
//
// Data files use two shapes for the same field:
//
//	"Pricing": "Free"
//	"Pricing": { "short": "Free tier", "long": "Free tier + $20/mo Pro" }
//
// Either key of the pair may be missing.
type Value struct {
	kind   Kind
	scalar string
	short  string
	long   string
}

// Scalar returns a plain text Value.
func Scalar(text string) Value {
	return Value{kind: KindScalar, scalar: text}
}

// ShortLong returns a short/long pair Value.
func ShortLong(short, long string) Value {
	return Value{kind: KindShortLong, short: short, long: long}
}

// Kind reports the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Present reports whether the field carried any value at all, even an empty one.
func (v Value) Present() bool {
	return v.kind != KindAbsent
}

// Long resolves v preferring the long form, then the short form.
func (v Value) Long() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindShortLong:
		if v.long != "" {
			return v.long
		}
		return v.short
	}
	return ""
}

// Short resolves v preferring the short form, then the long form.
func (v Value) Short() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindShortLong:
		if v.short != "" {
			return v.short
		}
		return v.long
	}
	return ""
}

// Text is the scalar text, or the long-preferred text of a pair.
func (v Value) Text() string {
	return v.Long()
}

// IsZero reports whether v resolves to no text.
func (v Value) IsZero() bool {
	return v.Long() == ""
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	if data[0] != '{' {
		text, err := rawText(data)
		if err != nil {
			return err
		}
		*v = Scalar(text)
		return nil
	}

	var pair map[string]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode short/long value: %w", err)
	}

	var short, long string
	if raw, ok := pair["short"]; ok {
		text, err := rawText(raw)
		if err != nil {
			return err
		}
		short = text
	}
	if raw, ok := pair["long"]; ok {
		text, err := rawText(raw)
		if err != nil {
			return err
		}
		long = text
	}

	*v = ShortLong(short, long)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		return json.Marshal(v.scalar)
	case KindShortLong:
		return json.Marshal(map[string]string{"short": v.short, "long": v.long})
	}
	return []byte("null"), nil
}

// rawText turns a JSON literal into display text. Strings are unquoted, null is
// empty, string lists are joined with ", " and any other literal keeps its JSON
// spelling.
func rawText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode string value: %w", err)
		}
		return s, nil
	case '[':
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			return strings.Join(list, ", "), nil
		}
	}
	return string(raw), nil
}
