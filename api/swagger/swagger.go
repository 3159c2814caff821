package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academia Console API",
        "description": "Report aggregation backend for the academic admin console",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Reports", "description": "Report generation and rendering"},
        {"name": "Audit", "description": "Console audit history"}
    ],
    "paths": {
        "/reports/generate": {
            "post": {
                "tags": ["Reports"],
                "summary": "Generate a report for the session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error or unknown period"}
                }
            }
        },
        "/reports/view": {
            "get": {
                "tags": ["Reports"],
                "summary": "Re-render the session's report under new selections",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "sort_by", "in": "query", "type": "string", "enum": ["name", "date", "amount", "capacity"]},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No generated report for this session"}
                }
            }
        },
        "/reports/periods": {
            "get": {
                "tags": ["Reports"],
                "summary": "List selectable report periods",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/courses": {
            "get": {
                "tags": ["Reports"],
                "summary": "List courses for the filter dropdown",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/audit": {
            "get": {
                "tags": ["Audit"],
                "summary": "List audit entries",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ReportRequest": {
            "type": "object",
            "properties": {
                "domain": {"type": "string", "enum": ["students", "courses", "finance"]},
                "period": {"type": "string"},
                "course_id": {"type": "string"},
                "status": {"type": "string"},
                "method": {"type": "string"},
                "shift": {"type": "string"},
                "occupancy": {"type": "string", "enum": ["baja", "media", "alta"]}
            },
            "required": ["domain"]
        },
        "ReportViewResponse": {
            "type": "object",
            "properties": {
                "domain": {"type": "string"},
                "period": {"$ref": "#/definitions/Period"},
                "datos": {"type": "array", "items": {"type": "object"}},
                "estadisticas": {"type": "object"},
                "search": {"type": "string"},
                "sort_by": {"type": "string"},
                "ascending": {"type": "boolean"}
            }
        },
        "Period": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
