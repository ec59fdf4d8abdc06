// Package docs registers the OpenAPI document served under /swagger.
package docs

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
        "/api/data": {
            "get": {
                "description": "Explains how to submit a search. Does not run the engine.",
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search usage",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/daemon.MessageResponse"}
                    }
                }
            },
            "post": {
                "description": "Runs the search engine synchronously and returns the result document it wrote.\nEngine failures still answer 200; see the X-Engine-Outcome and X-Result-Status headers.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search flights",
                "parameters": [
                    {
                        "description": "Search query",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/daemon.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true},
                        "headers": {
                            "X-Engine-Outcome": {
                                "type": "string",
                                "description": "success, engine_failure, executable_not_found, timeout or canceled"
                            },
                            "X-Result-Status": {
                                "type": "string",
                                "description": "ok, missing or malformed"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/daemon.ErrorResponse"}
                    }
                }
            }
        },
        "/api/data/latest": {
            "get": {
                "description": "Returns the most recent successful search result without running the engine.",
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Latest search result",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true},
                        "headers": {
                            "X-Result-Status": {
                                "type": "string",
                                "description": "ok, missing or malformed"
                            }
                        }
                    }
                }
            }
        },
        "/config": {
            "get": {
                "description": "Returns the engine and CORS configuration fixed at startup.",
                "produces": ["application/json"],
                "tags": ["config"],
                "summary": "Get configuration",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/daemon.ConfigResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns service health and version.",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/daemon.HealthResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "daemon.CORSSettings": {
            "type": "object",
            "properties": {
                "allow_credentials": {"type": "boolean", "example": false},
                "allowed_headers": {"type": "array", "items": {"type": "string"}, "example": ["Content-Type"]},
                "allowed_methods": {"type": "array", "items": {"type": "string"}, "example": ["GET", "POST", "OPTIONS"]},
                "allowed_origin": {"type": "string", "example": "http://localhost:5173"}
            }
        },
        "daemon.ConfigResponse": {
            "type": "object",
            "properties": {
                "cors": {"$ref": "#/definitions/daemon.CORSSettings"},
                "engine": {"$ref": "#/definitions/daemon.EngineSettings"}
            }
        },
        "daemon.EngineSettings": {
            "type": "object",
            "properties": {
                "input_file": {"type": "string", "example": "data.json"},
                "isolation": {"type": "string", "example": "per-request"},
                "output_file": {"type": "string", "example": "output.json"},
                "path": {"type": "string", "example": "./main.exe"},
                "timeout": {"type": "string", "example": "30s"}
            }
        },
        "daemon.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Missing one or more required fields"}
            }
        },
        "daemon.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "version": {"type": "string", "example": "0.1.0"}
            }
        },
        "daemon.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Use POST with JSON body containing source, destination, day, departure_time"}
            }
        },
        "daemon.SearchRequest": {
            "type": "object",
            "properties": {
                "day": {"type": "string", "example": "monday"},
                "departure_time": {"type": "string", "example": "480"},
                "destination": {"type": "string", "example": "LAX"},
                "source": {"type": "string", "example": "JFK"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PlaneBooking Flight Search API",
	Description:      "Runs the external flight search engine and returns its result document.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
