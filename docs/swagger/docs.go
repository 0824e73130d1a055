// Package swagger holds the OpenAPI document for the JSON API. Keep it in
// step with the swag annotations in internal/api.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth": {
            "post": {
                "description": "Compares the submitted password with the server-held secret. Stateless: no session is issued.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Check the app password",
                "parameters": [
                    {
                        "description": "Password attempt",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.AuthRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.AuthResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/api.AuthResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.AuthResponse"}}
                }
            }
        },
        "/generate": {
            "post": {
                "description": "Wraps the persona template and the task in a meta-prompt and makes a single model call.\nA persona with only an id is resolved from the server catalog.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Generate"],
                "summary": "Generate an optimized prompt",
                "parameters": [
                    {
                        "description": "Persona and task",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.GenerateResponse"},
                        "headers": {"X-Generation-ID": {"type": "string", "description": "Generation identifier"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/personas": {
            "get": {
                "description": "Returns every persona the server knows, including the full prompt template.",
                "produces": ["application/json"],
                "tags": ["Personas"],
                "summary": "List personas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PersonaListResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.AuthRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}}
        },
        "api.AuthResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.GenerateRequest": {
            "type": "object",
            "properties": {
                "persona": {"$ref": "#/definitions/api.PersonaPayload"},
                "userTask": {"type": "string"}
            }
        },
        "api.GenerateResponse": {
            "type": "object",
            "properties": {"optimizedPrompt": {"type": "string"}}
        },
        "api.PersonaListResponse": {
            "type": "object",
            "properties": {
                "personas": {"type": "array", "items": {"$ref": "#/definitions/api.PersonaResponse"}}
            }
        },
        "api.PersonaPayload": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "prompt": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "api.PersonaResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "prompt": {"type": "string"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "promptsmith API",
	Description:      "Rewrites a task into a prompt tailored to a target AI persona.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
