package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/joestump/promptsmith/internal/llm"
	"github.com/joestump/promptsmith/internal/persona"
)

const (
	msgMissingAPIKey = "Server configuration error: Missing API Key."
	msgMissingInput  = "Missing persona or userTask in request body."
	msgInvalidBody   = "Invalid request body."
)

// generateHandler rewrites a task for a persona through the optimizer.
type generateHandler struct {
	optimizer *llm.Optimizer
	catalog   *persona.Catalog
}

// Generate rewrites userTask into a prompt for persona.
// POST /generate
//
// @Summary      Generate an optimized prompt
// @Description  Wraps the persona template and the task in a meta-prompt and makes a single model call.
// @Description  A persona with only an id is resolved from the server catalog.
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateRequest   true  "Persona and task"
// @Success      200   {object}  GenerateResponse
// @Header       200   {string}  X-Generation-ID  "Generation identifier"
// @Failure      400   {object}  ErrorResponse
// @Failure      405   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /generate [post]
func (h *generateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !h.optimizer.Configured() {
		log.Printf("api: generate rejected: no LLM API key configured")
		writeError(w, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Persona == nil || strings.TrimSpace(req.UserTask) == "" {
		writeError(w, http.StatusBadRequest, msgMissingInput)
		return
	}
	p, ok := h.resolve(req.Persona)
	if !ok {
		writeError(w, http.StatusBadRequest, msgMissingInput)
		return
	}

	// Once issued, the model call completes even if the client goes away.
	g, err := h.optimizer.Optimize(context.WithoutCancel(r.Context()), p, req.UserTask)
	if err != nil {
		var genErr *llm.GenerationError
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			writeError(w, http.StatusInternalServerError, msgMissingAPIKey)
		case errors.Is(err, llm.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, msgMissingInput)
		case errors.As(err, &genErr):
			writeError(w, http.StatusInternalServerError, genErr.Error())
		default:
			log.Printf("api: generate: %v", err)
			writeError(w, http.StatusInternalServerError, (&llm.GenerationError{Err: err}).Error())
		}
		return
	}

	w.Header().Set("X-Generation-ID", g.ID)
	writeJSON(w, http.StatusOK, GenerateResponse{OptimizedPrompt: g.Prompt})
}

func (h *generateHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// resolve turns the request persona into a catalog-independent value.
// A persona without a prompt must name a catalog entry.
func (h *generateHandler) resolve(in *PersonaPayload) (persona.Persona, bool) {
	if strings.TrimSpace(in.Prompt) != "" {
		return persona.Persona{
			ID:          in.ID,
			Name:        in.Name,
			Title:       in.Title,
			Description: in.Description,
			Prompt:      in.Prompt,
		}, true
	}
	if h.catalog == nil || in.ID == "" {
		return persona.Persona{}, false
	}
	p, err := h.catalog.Get(in.ID)
	if err != nil {
		return persona.Persona{}, false
	}
	return p, true
}
