package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "timespent API",
        "description": "Personal productivity and goal tracking service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Google OAuth, guest sessions and token lifecycle"},
        {"name": "Schedule", "description": "Schedule document, occurrence expansion and week partition"},
        {"name": "Journal", "description": "Ratings, notes, focus areas and day-offs"},
        {"name": "Goals", "description": "Goals with key results"},
        {"name": "Profile", "description": "Per-user settings"},
        {"name": "Exports", "description": "CSV, PDF and iCalendar downloads"}
    ],
    "paths": {
        "/auth/google": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in with Google",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OAuthLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Exchange failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/guest": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Start a guest session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Guest mode disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Refresh access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout current session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get the schedule document",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace the schedule document",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedule/occurrences": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Expand one day",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/occurrences/resolve": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Mutate one occurrence",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/weeks": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Partition a year into weeks",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/ratings": {
            "get": {
                "tags": ["Journal"],
                "summary": "List productivity ratings",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Journal"],
                "summary": "Replace productivity ratings",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/Rating"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/weekly-notes": {
            "get": {
                "tags": ["Journal"],
                "summary": "List weekly notes",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Journal"],
                "summary": "Replace weekly notes",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/month-notes": {
            "get": {
                "tags": ["Journal"],
                "summary": "List month notes",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Journal"],
                "summary": "Replace month notes",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/focus-areas": {
            "get": {
                "tags": ["Journal"],
                "summary": "List focus areas",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Journal"],
                "summary": "Replace focus areas",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/day-offs": {
            "get": {
                "tags": ["Journal"],
                "summary": "List day-offs",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Journal"],
                "summary": "Replace day-offs",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "object"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/goals": {
            "get": {
                "tags": ["Goals"],
                "summary": "List goals",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Goals"],
                "summary": "Replace goals",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/Goal"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get profile settings",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Update profile settings",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProfileUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/schedule.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the schedule as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/exports/ratings.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the ratings as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/exports/week-report.pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a one-week PDF report",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "week", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF payload"}
                }
            }
        },
        "/exports/calendar.ics": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the schedule as an iCalendar feed",
                "security": [{"BearerAuth": []}],
                "produces": ["text/calendar"],
                "responses": {
                    "200": {"description": "ICS payload"}
                }
            }
        }
    },
    "definitions": {
        "OAuthLoginRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"}
            },
            "required": ["code"]
        },
        "RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            },
            "required": ["refresh_token"]
        },
        "ScheduleEntry": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "endTime": {"type": "string"},
                "title": {"type": "string"},
                "color": {"type": "string"},
                "repeat": {"type": "string", "enum": ["", "daily", "weekly", "biweekly", "monthly"]},
                "repeatUntil": {"type": "string"},
                "repeatDays": {"type": "array", "items": {"type": "integer"}},
                "skipDates": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["title"]
        },
        "ResolveRequest": {
            "type": "object",
            "properties": {
                "dayKey": {"type": "string"},
                "index": {"type": "integer"},
                "meta": {
                    "type": "object",
                    "properties": {
                        "originDayKey": {"type": "string"},
                        "originIndex": {"type": "integer"}
                    }
                },
                "scope": {"type": "string", "enum": ["single", "future"]},
                "action": {"type": "string", "enum": ["update", "delete", "delete-future"]},
                "entry": {"$ref": "#/definitions/ScheduleEntry"}
            },
            "required": ["dayKey", "action"]
        },
        "Rating": {
            "type": "object",
            "properties": {
                "dayKey": {"type": "string"},
                "score": {"type": "integer", "minimum": 0, "maximum": 5},
                "note": {"type": "string"}
            },
            "required": ["dayKey", "score"]
        },
        "Goal": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "notes": {"type": "string"},
                "color": {"type": "string"},
                "target_date": {"type": "string"},
                "done": {"type": "boolean"},
                "key_results": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "title": {"type": "string"},
                            "target": {"type": "number"},
                            "current": {"type": "number"},
                            "unit": {"type": "string"},
                            "done": {"type": "boolean"}
                        }
                    }
                }
            },
            "required": ["title"]
        },
        "ProfileUpdateRequest": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "week_start_day": {"type": "integer", "minimum": 0, "maximum": 6},
                "birth_date": {"type": "string"},
                "retention_days": {"type": "integer"}
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
