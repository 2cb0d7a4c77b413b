package provider

import (
	"encoding/json"
)

// ContentResult is the outcome of locating the generated text in a response
// body: either Found with the text, or Malformed with a reason.
type ContentResult struct {
	text   string
	reason string
	found  bool
}

// Found creates a result holding the extracted text.
func Found(text string) ContentResult {
	return ContentResult{text: text, found: true}
}

// Malformed creates a result describing why no text could be extracted.
func Malformed(reason string) ContentResult {
	return ContentResult{reason: reason}
}

// Text returns the extracted text and true, or "" and false when malformed.
func (r ContentResult) Text() (string, bool) { return r.text, r.found }

// Reason returns why extraction failed. Empty for Found results.
func (r ContentResult) Reason() string { return r.reason }

// ParseContent navigates content -> [0] -> text in a Messages API response.
// A non-nil error means the body is not valid JSON at all.
func ParseContent(body []byte) (ContentResult, error) {
	if !json.Valid(body) {
		var v any
		err := json.Unmarshal(body, &v)
		return ContentResult{}, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return Malformed("response is not an object"), nil
	}

	rawContent, ok := top["content"]
	if !ok {
		return Malformed("missing content"), nil
	}

	var blocks []json.RawMessage
	if err := json.Unmarshal(rawContent, &blocks); err != nil || blocks == nil {
		return Malformed("content is not an array"), nil
	}
	if len(blocks) == 0 {
		return Malformed("content is empty"), nil
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(blocks[0], &first); err != nil || first == nil {
		return Malformed("content block is not an object"), nil
	}

	rawText, ok := first["text"]
	if !ok {
		return Malformed("content block has no text"), nil
	}

	var text *string
	if err := json.Unmarshal(rawText, &text); err != nil || text == nil {
		return Malformed("text is not a string"), nil
	}

	return Found(*text), nil
}
