package api

import (
	"net/http"

	"github.com/joestump/promptsmith/internal/persona"
)

type personasHandler struct {
	catalog *persona.Catalog
}

// List returns the persona catalog in display order.
// GET /api/personas
//
// @Summary      List personas
// @Description  Returns every persona the server knows, including the full prompt template.
// @Tags         Personas
// @Produce      json
// @Success      200  {object}  PersonaListResponse
// @Router       /personas [get]
func (h *personasHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := PersonaListResponse{Personas: []PersonaResponse{}}
	if h.catalog != nil {
		for _, p := range h.catalog.All() {
			resp.Personas = append(resp.Personas, toPersonaResponse(p))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
