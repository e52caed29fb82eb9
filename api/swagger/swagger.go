package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Club Officials API",
        "description": "Scorekeeper and clock duty scheduling for club games",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Login and session info"},
        {"name": "Games", "description": "Team schedules and rosters"},
        {"name": "Officials", "description": "Scorekeeper and clock duty slots"},
        {"name": "Stats", "description": "Confirmed shift leaderboard"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teams/{teamId}/players": {
            "get": {
                "tags": ["Games"],
                "summary": "List the team roster",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "teamId", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Team not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teams/{teamId}/games": {
            "get": {
                "tags": ["Games"],
                "summary": "List team games",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "teamId", "required": true, "type": "string"},
                    {"in": "query", "name": "from", "type": "string", "format": "date"},
                    {"in": "query", "name": "to", "type": "string", "format": "date"},
                    {"in": "query", "name": "pending", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "tags": ["Games"],
                "summary": "Get a game with its officials",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/games/{id}/officials/{slot}": {
            "put": {
                "tags": ["Officials"],
                "summary": "Replace one duty slot of a game",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "path", "name": "slot", "required": true, "type": "string", "enum": ["scorekeeper", "clock"]},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/SetAssignmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Assignment rule violated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Not a manager of the team", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Officials"],
                "summary": "Clear a duty slot",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "path", "name": "slot", "required": true, "type": "string", "enum": ["scorekeeper", "clock"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/games/{id}/officials/{slot}/transitions": {
            "post": {
                "tags": ["Officials"],
                "summary": "Advance the confirmation workflow of a slot",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "path", "name": "slot", "required": true, "type": "string", "enum": ["scorekeeper", "clock"]},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/TransitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Transition not allowed from current state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teams/{teamId}/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Confirmed shifts per player",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "teamId", "required": true, "type": "string"},
                    {"in": "query", "name": "from", "type": "string", "format": "date"},
                    {"in": "query", "name": "to", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teams/{teamId}/stats/export": {
            "get": {
                "tags": ["Stats"],
                "summary": "Download the leaderboard",
                "produces": ["text/csv", "application/pdf"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "teamId", "required": true, "type": "string"},
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Assignment": {
            "type": "object",
            "properties": {
                "playerName": {"type": "string"},
                "handledBy": {"type": "string", "enum": ["guardian", "pool"], "x-nullable": true},
                "confirmedBy": {"type": "string", "x-nullable": true}
            }
        },
        "SetAssignmentRequest": {
            "type": "object",
            "required": ["assignment"],
            "properties": {
                "assignment": {"$ref": "#/definitions/Assignment"}
            }
        },
        "TransitionRequest": {
            "type": "object",
            "required": ["action"],
            "properties": {
                "action": {"type": "string", "enum": ["propose", "confirm_guardian", "confirm_pool", "unassign"]},
                "playerName": {"type": "string"},
                "confirmerName": {"type": "string", "x-nullable": true}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
