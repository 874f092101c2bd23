package onedrive

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tree is a decoded response body: string keys mapping to nested Trees
// (as map[string]any), []any, string, float64, bool or nil. All JSON numbers
// arrive as float64; integer semantics are applied by the mappers.
type Tree = map[string]any

// DecodeTree parses a response body into a Tree.
// An empty body yields ErrNoContent, which is distinct from "{}".
// Malformed JSON, or JSON whose top level is not an object, yields
// ErrDecodingFailed.
func DecodeTree(body []byte) (Tree, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoContent
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}

	tree, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, not an object", ErrDecodingFailed, raw)
	}
	return tree, nil
}

// DecodeInto decodes a response body directly into a fixed shape, using the
// provider's field names through the destination's json tags.
func DecodeInto(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrNoContent
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingFailed, err)
	}
	return nil
}
