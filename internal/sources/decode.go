package sources

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/aitoolcomparator/tool-pages/internal/record"
)

// ErrNotArray is returned when a data literal is not a JSON array.
var ErrNotArray = errors.New("data is not an array of records")

// Decode parses a JSON array of tool records.
func Decode(body []byte) ([]record.Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, ErrNotArray
	}

	var records []record.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}
	return records, nil
}
