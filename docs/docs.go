// Package docs holds the Swagger specification served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "user",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["username", "password", "email"],
                            "properties": {
                                "username": {"type": "string", "example": "testuser"},
                                "password": {"type": "string", "example": "password123"},
                                "email": {"type": "string", "example": "testuser@example.com"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "User created successfully"},
                    "400": {"description": "All fields are required"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Obtain a token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["username", "password"],
                            "properties": {
                                "username": {"type": "string", "example": "testuser"},
                                "password": {"type": "string", "example": "password123"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Access and refresh tokens"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List the caller's tasks",
                "description": "Excludes soft-deleted tasks. Supports exact due_date filtering and case-insensitive title search.",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "due_date", "type": "string", "format": "date", "description": "Exact due date match (YYYY-MM-DD)"},
                    {"in": "query", "name": "search", "type": "string", "description": "Title substring search"}
                ],
                "responses": {
                    "200": {"description": "Task list"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["title", "description", "due_date"],
                            "properties": {
                                "title": {"type": "string", "example": "Buy milk"},
                                "description": {"type": "string", "example": "Buy milk at the store"},
                                "due_date": {"type": "string", "format": "date", "example": "2024-08-01"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created task"},
                    "400": {"description": "Field-keyed validation errors"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Retrieve a task",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Task"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string"},
                                "description": {"type": "string"},
                                "due_date": {"type": "string", "format": "date"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated task"},
                    "400": {"description": "Field-keyed validation errors"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Soft-delete a task",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Task deleted successfully"},
                    "404": {"description": "Not found"}
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "TaskLoop API",
	Description:      "Multi-user task tracking API with soft-delete, due-date filtering and title search",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
