package md2ejs

import (
	"encoding/json"
	"time"
)

// EditorVersion is reported in the Document envelope, matching the
// editor.js release whose block schemas this package targets.
const EditorVersion = "2.28.2"

// Block is one flat editor.js block: a type name and a variant-specific
// data payload.
type Block struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Data is a block's payload. Values follow encoding/json conventions:
// numbers decode as float64, nested objects as map[string]any.
type Data map[string]any

// String returns the value under key as a string, or "" when absent or not
// a string.
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Int returns the value under key as an int. JSON numbers arrive as
// float64, so both int and float64 values are accepted.
func (d Data) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Bool returns the value under key as a bool, or false when absent.
func (d Data) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Map returns the value under key as a nested payload, or nil.
func (d Data) Map(key string) Data {
	switch v := d[key].(type) {
	case Data:
		return v
	case map[string]any:
		return Data(v)
	}
	return nil
}

// Slice returns the value under key as a slice, or nil.
func (d Data) Slice(key string) []any {
	s, _ := d[key].([]any)
	return s
}

// asData converts a decoded JSON value to Data. Values built in memory
// arrive as Data, values decoded from JSON as map[string]any.
func asData(v any) Data {
	switch t := v.(type) {
	case Data:
		return t
	case map[string]any:
		return Data(t)
	}
	return nil
}

// asStrings converts a decoded JSON value to a string slice. Table rows
// built in memory arrive as []string, rows decoded from JSON as []any.
func asStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, _ := e.(string)
			out = append(out, s)
		}
		return out
	}
	return nil
}

// Document is the editor.js save envelope: a timestamp, an ordered block
// sequence, and the editor version the schema targets.
type Document struct {
	Time    int64   `json:"time"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version"`
}

// NewDocument wraps blocks in a Document stamped with the current time in
// Unix milliseconds.
func NewDocument(blocks []Block) Document {
	return Document{
		Time:    time.Now().UnixMilli(),
		Blocks:  blocks,
		Version: EditorVersion,
	}
}

// UnmarshalDocument decodes an editor.js save payload. A bare block array
// (no envelope) is accepted as well, since older exports persist blocks
// without the wrapper.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && (doc.Blocks != nil || doc.Version != "") {
		return doc, nil
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return Document{}, err
	}
	doc = Document{Blocks: blocks, Version: EditorVersion}
	return doc, nil
}
