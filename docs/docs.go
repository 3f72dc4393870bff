// Package docs holds the swagger document served at /swagger/index.html.
// Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/proposals": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Search proposals",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "seller_id", "in": "query"},
                    {"type": "string", "name": "lead_id", "in": "query"},
                    {"type": "string", "name": "proposal_number", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ProposalResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Create a proposal aggregate",
                "parameters": [
                    {"name": "proposal", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ProposalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ProposalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/proposals/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Get a proposal aggregate",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProposalResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proposals"],
                "summary": "Reconcile a proposal aggregate and apply status transitions",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "proposal", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ProposalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProposalResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["proposals"],
                "summary": "Delete a proposal aggregate",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/proposal-approvals": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["approvals"],
                "summary": "List proposals the acting user may review",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ProposalApprovalResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "request.ProposalRequest": {
            "type": "object",
            "properties": {
                "lead_id": {"type": "string"},
                "status": {"type": "string"},
                "num": {"type": "integer"},
                "version": {"type": "integer"},
                "immediate_delivery": {"type": "boolean"},
                "detail": {"type": "object"},
                "detail_vehicle": {"type": "object"},
                "items": {"type": "array", "items": {"type": "object"}},
                "payments": {"type": "array", "items": {"type": "object"}},
                "commissions": {"type": "array", "items": {"type": "object"}},
                "persons": {"type": "array", "items": {"type": "object"}},
                "documents": {"type": "array", "items": {"type": "object"}},
                "sales_order": {"type": "object"}
            }
        },
        "response.ProposalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cod": {"type": "string"},
                "proposal_number": {"type": "string"},
                "num": {"type": "integer"},
                "version": {"type": "integer"},
                "status": {"type": "string"},
                "lead_id": {"type": "string"}
            }
        },
        "response.ProposalApprovalResponse": {
            "type": "object",
            "properties": {
                "proposal_id": {"type": "string"},
                "status": {"type": "string"},
                "discount": {"type": "string"},
                "requires_approval": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Proposal Service API",
	Description:      "Vehicle sales proposals: aggregate reconciliation, status workflow and commercial approvals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
