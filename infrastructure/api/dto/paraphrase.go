// Package dto provides the JSON request and response bodies of the HTTP API.
package dto

// ParaphraseRequest is the body of POST /api/paraphrase.
type ParaphraseRequest struct {
	Text string `json:"text"`
}

// ParaphraseResponse is the successful response of POST /api/paraphrase.
type ParaphraseResponse struct {
	ParaphrasedText string `json:"paraphrasedText"`
}

// HealthResponse is the response of GET /.
type HealthResponse struct {
	Status string `json:"status"`
}
