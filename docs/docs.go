package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Tasklight API Documentation",
        "title": "Tasklight API",
        "version": "1.0"
    },
    "host": "localhost:3001",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Server is healthy"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new account",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "required": ["username", "password"],
                        "properties": {
                            "username": {"type": "string"},
                            "password": {"type": "string", "minLength": 6},
                            "email": {"type": "string"}
                        }
                    }
                }],
                "responses": {
                    "200": {"description": "Token for the new account"},
                    "400": {"description": "Invalid input"},
                    "409": {"description": "Username or email already taken"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate and receive a token",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "required": ["username", "password"],
                        "properties": {
                            "username": {"type": "string"},
                            "password": {"type": "string"}
                        }
                    }
                }],
                "responses": {
                    "200": {"description": "Token and user identity"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/todos": {
            "get": {
                "tags": ["Tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "List the caller's tasks",
                "responses": {
                    "200": {"description": "Array of tasks"},
                    "401": {"description": "Missing token"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a task",
                "responses": {
                    "201": {"description": "Created task"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/todos/{id}": {
            "put": {
                "tags": ["Tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Partially update a task",
                "responses": {
                    "200": {"description": "Acknowledgement with changed fields"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a task",
                "responses": {
                    "200": {"description": "Acknowledgement"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/todos/groups": {
            "get": {
                "tags": ["Lists"],
                "security": [{"BearerAuth": []}],
                "summary": "List the caller's lists",
                "responses": {
                    "200": {"description": "Array of lists"}
                }
            },
            "post": {
                "tags": ["Lists"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a list",
                "responses": {
                    "201": {"description": "Created list"},
                    "409": {"description": "Duplicate name for this owner"}
                }
            }
        },
        "/todos/groups/{id}": {
            "put": {
                "tags": ["Lists"],
                "security": [{"BearerAuth": []}],
                "summary": "Partially update a list",
                "responses": {
                    "200": {"description": "Acknowledgement"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "delete": {
                "tags": ["Lists"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a list; member tasks keep existing without a list",
                "responses": {
                    "200": {"description": "Acknowledgement"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/todos/stats": {
            "get": {
                "tags": ["Statistics"],
                "security": [{"BearerAuth": []}],
                "summary": "Aggregated statistics over the caller's snapshot",
                "responses": {
                    "200": {"description": "Overview, priorities, deadlines, per-list and completed breakdowns"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "Server-sent event stream of task events; unscoped broadcast",
                "responses": {
                    "200": {"description": "text/event-stream"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Tasklight API",
	Description:      "Tasklight API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
