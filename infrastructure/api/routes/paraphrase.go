// Package routes provides the HTTP handlers of the API.
package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/helixml/rephrase"
	"github.com/helixml/rephrase/domain/paraphrase"
	"github.com/helixml/rephrase/infrastructure/api/dto"
	"github.com/helixml/rephrase/infrastructure/api/middleware"
)

// ParaphraseRouter handles paraphrase API endpoints.
type ParaphraseRouter struct {
	client *rephrase.Client
	logger *slog.Logger
}

// NewParaphraseRouter creates a new ParaphraseRouter.
func NewParaphraseRouter(client *rephrase.Client) *ParaphraseRouter {
	return &ParaphraseRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Paraphrase handles POST /api/paraphrase.
func (r *ParaphraseRouter) Paraphrase(w http.ResponseWriter, req *http.Request) {
	body, err := decodeRequest(req.Body)
	if err != nil {
		middleware.WriteError(w, req, paraphrase.NewInvalidInput(fmt.Sprintf("Invalid request body: %v", err)), r.logger)
		return
	}

	result, err := r.client.Paraphrase.Rewrite(req.Context(), paraphrase.NewRequest(body.Text))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ParaphraseResponse{ParaphrasedText: result.Text()})
}

// errTrailingData reports input left over after the JSON object.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeRequest reads exactly one JSON value from body.
func decodeRequest(body io.Reader) (dto.ParaphraseRequest, error) {
	var parsed dto.ParaphraseRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&parsed); err != nil {
		return dto.ParaphraseRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return dto.ParaphraseRequest{}, errTrailingData
	}
	return parsed, nil
}
