// Package docs registers the OpenAPI document served at /swagger/*any.
// Keep it in sync with the handler annotations (see go:generate in cmd/api).
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
        "/gateways": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "List gateways",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.GatewaysResponse"}
                    }
                }
            }
        },
        "/payments/{gateway}": {
            "post": {
                "description": "Validates the card, processes the payment and logs the reference with the chosen gateway family.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Pay through a gateway",
                "parameters": [
                    {
                        "type": "string",
                        "description": "pagseguro, mercadopago or stripe",
                        "name": "gateway",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Payment",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.PaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.PaymentResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/pkg.HTTPError"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/response.PaymentResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/pkg.HTTPError"}
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.PingResponse"}
                    }
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
        "request.PaymentRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "example": 150},
                "card_number": {"type": "string", "example": "1234567890123456"}
            }
        },
        "response.GatewaysResponse": {
            "type": "object",
            "properties": {
                "gateways": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.PaymentResponse": {
            "type": "object",
            "properties": {
                "gateway": {"type": "string"},
                "message": {"type": "string"},
                "processed_at": {"type": "string"},
                "status": {"type": "string"},
                "transaction_reference": {"type": "string"}
            }
        },
        "response.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Payment Gateway Factory API",
	Description:      "Simulated PagSeguro, MercadoPago and Stripe payments built from one gateway family per request.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
