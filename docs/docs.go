// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
        "/attendees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Attendees"],
                "summary": "List attendees",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/attendee.Attendee"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Attendees"],
                "summary": "Create attendee",
                "parameters": [
                    {"description": "Attendee", "name": "attendee", "in": "body", "required": true, "schema": {"$ref": "#/definitions/attendee.CreateAttendeeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/attendee.Attendee"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperror.Payload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/attendees/{id}": {
            "delete": {
                "description": "Returns the deleted row, or 204 when no attendee has the id",
                "produces": ["application/json"],
                "tags": ["Attendees"],
                "summary": "Delete attendee",
                "parameters": [
                    {"type": "integer", "description": "Attendee ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/attendee.Attendee"}},
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "List venues",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/venue.Venue"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            },
            "post": {
                "description": "Capacity must be at least 10",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Venues"],
                "summary": "Create venue",
                "parameters": [
                    {"description": "Venue", "name": "venue", "in": "body", "required": true, "schema": {"$ref": "#/definitions/venue.CreateVenueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/venue.Venue"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/event.Event"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            },
            "post": {
                "description": "date_time is ISO-8601; timestamps without an offset are UTC",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.CreateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}},
                    "422": {"description": "unknown venue_id", "schema": {"$ref": "#/definitions/apperror.Payload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/audit-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Audit"],
                "summary": "List recent audit log entries",
                "parameters": [
                    {"type": "string", "description": "Action", "name": "action", "in": "query"},
                    {"type": "string", "description": "success or failure", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Max entries (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/auditlog.AuditLog"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/audit-logs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Audit"],
                "summary": "Get audit log entry",
                "parameters": [
                    {"type": "integer", "description": "Audit log ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auditlog.AuditLog"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/reports/{report}": {
            "get": {
                "description": "Without format the rows are returned as JSON",
                "produces": ["application/json", "text/csv", "application/pdf"],
                "tags": ["Reports"],
                "summary": "Download a list export",
                "parameters": [
                    {"type": "string", "description": "attendees, venues or events", "name": "report", "in": "path", "required": true},
                    {"type": "string", "description": "csv, excel or pdf", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Payload"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Ops"],
                "summary": "Store and cache health",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "apperror.Payload": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "attendee.Attendee": {
            "type": "object",
            "properties": {
                "attendee_id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "payment_status": {"type": "string"}
            }
        },
        "attendee.CreateAttendeeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "payment_status": {"type": "string"}
            }
        },
        "venue.Venue": {
            "type": "object",
            "properties": {
                "venue_id": {"type": "integer"},
                "venue_name": {"type": "string"},
                "layout": {"type": "string"},
                "capacity": {"type": "integer"},
                "security_id": {"type": "integer"},
                "design_id": {"type": "integer"}
            }
        },
        "venue.CreateVenueRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "layout": {"type": "string"},
                "capacity": {"type": "integer", "minimum": 10},
                "security_id": {"type": "integer"},
                "design_id": {"type": "integer"}
            }
        },
        "event.Event": {
            "type": "object",
            "properties": {
                "event_id": {"type": "integer"},
                "event_name": {"type": "string"},
                "date_time": {"type": "string", "format": "date-time"},
                "venue_id": {"type": "integer"},
                "volunteer_id": {"type": "integer"},
                "finance_id": {"type": "integer"}
            }
        },
        "event.CreateEventRequest": {
            "type": "object",
            "properties": {
                "event_name": {"type": "string"},
                "date_time": {"type": "string", "example": "2025-06-01T18:00:00"},
                "venue_id": {"type": "integer"},
                "volunteer_id": {"type": "integer"},
                "finance_id": {"type": "integer"}
            }
        },
        "auditlog.AuditLog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "action": {"type": "string"},
                "record_id": {"type": "integer"},
                "details": {"type": "object"},
                "ip_address": {"type": "string"},
                "request_id": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Management API",
	Description:      "Attendees, venues and events backed by a relational store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
