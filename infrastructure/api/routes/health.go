package routes

import (
	"net/http"

	"github.com/helixml/rephrase/infrastructure/api/dto"
	"github.com/helixml/rephrase/infrastructure/api/middleware"
)

// Health handles GET / and always reports ok.
func Health(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
