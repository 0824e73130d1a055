package api

import "github.com/joestump/promptsmith/internal/persona"

// ErrorResponse is the failure body of the generate endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthRequest is the request body for POST /auth.
type AuthRequest struct {
	Password string `json:"password"`
}

// AuthResponse is the body of every POST /auth response.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PersonaPayload is a persona as sent by clients. Only ID is required when
// the persona comes from the server's catalog.
type PersonaPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
}

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	Persona  *PersonaPayload `json:"persona"`
	UserTask string          `json:"userTask"`
}

// GenerateResponse is the success body of POST /generate.
type GenerateResponse struct {
	OptimizedPrompt string `json:"optimizedPrompt"`
}

// PersonaResponse is the JSON representation of a catalog persona.
type PersonaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// PersonaListResponse is the response for GET /api/personas.
type PersonaListResponse struct {
	Personas []PersonaResponse `json:"personas"`
}

func toPersonaResponse(p persona.Persona) PersonaResponse {
	return PersonaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
		Prompt:      p.Prompt,
	}
}
