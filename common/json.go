package common

import (
	"bytes"
	"encoding/json"
)

func EncodeJSON(v interface{}, indent bool, escapeHTML bool) ([]byte, error) {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

func PrintJSON(b []byte, indent bool, escapeHTML bool) string {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(json.RawMessage(b)); err != nil {
		return ""
	}

	return buffer.String()
}
