// Package paraphrase provides the domain types for text paraphrasing.
package paraphrase

import (
	"context"
	"strings"
)

// MessageEmptyText is returned when the request text is blank.
const MessageEmptyText = "Text cannot be empty"

// Request is a request to paraphrase a piece of text. Immutable value object.
type Request struct {
	text string
}

// NewRequest creates a Request for the given text.
func NewRequest(text string) Request {
	return Request{text: text}
}

// Text returns the text exactly as submitted.
func (r Request) Text() string { return r.text }

// Validate rejects text that is empty after trimming whitespace.
func (r Request) Validate() error {
	if strings.TrimSpace(r.text) == "" {
		return NewInvalidInput(MessageEmptyText)
	}
	return nil
}

// Response holds the paraphrased text.
type Response struct {
	text string
}

// NewResponse creates a Response.
func NewResponse(text string) Response {
	return Response{text: text}
}

// Text returns the paraphrased text.
func (r Response) Text() string { return r.text }

// Provider rewrites text using an external language model.
// Implementations return *Error values for every failure.
type Provider interface {
	Paraphrase(ctx context.Context, text string) (string, error)
}
