// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// PetstoreJSON is a small OpenAPI 3.0 document exercising references,
// extensions, enumerations and semantic scalars.
const PetstoreJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Swagger Petstore",
    "version": "1.0.0",
    "contact": {"name": "API Support", "email": "support@example.com"},
    "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
    "x-audience": "public"
  },
  "servers": [
    {"url": "https://petstore.example.com/v1", "description": "Production server"},
    {"url": "/v1"}
  ],
  "paths": {
    "/pets": {
      "get": {
        "summary": "List all pets",
        "operationId": "listPets",
        "tags": ["pets"],
        "parameters": [
          {
            "name": "limit",
            "in": "query",
            "description": "How many items to return at one time (max 100)",
            "required": false,
            "schema": {"type": "integer", "format": "int32", "maximum": 100}
          }
        ],
        "responses": {
          "200": {
            "description": "A paged array of pets",
            "headers": {
              "x-next": {"description": "A link to the next page of responses", "schema": {"type": "string"}}
            },
            "content": {
              "application/json": {"schema": {"$ref": "#/components/schemas/Pets"}}
            }
          },
          "default": {"$ref": "#/components/responses/Error"}
        }
      },
      "post": {
        "summary": "Create a pet",
        "operationId": "createPets",
        "tags": ["pets"],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
        },
        "responses": {
          "201": {"description": "Null response"}
        }
      }
    },
    "/pets/{petId}": {
      "get": {
        "summary": "Info for a specific pet",
        "operationId": "showPetById",
        "parameters": [
          {"name": "petId", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {
            "description": "Expected response to a valid request",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pet"}}}
          }
        }
      }
    },
    "x-paths-owner": "pets-team"
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer", "format": "int64"},
          "name": {"type": "string"},
          "tag": {"type": "string", "nullable": true}
        }
      },
      "Pets": {
        "type": "array",
        "maxItems": 100,
        "items": {"$ref": "#/components/schemas/Pet"}
      },
      "Error": {
        "type": "object",
        "required": ["code", "message"],
        "properties": {
          "code": {"type": "integer", "format": "int32"},
          "message": {"type": "string"}
        }
      }
    },
    "responses": {
      "Error": {
        "description": "unexpected error",
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}
      }
    },
    "securitySchemes": {
      "api_key": {"type": "apiKey", "name": "api_key", "in": "header"}
    }
  },
  "security": [{"api_key": []}],
  "tags": [{"name": "pets", "description": "Everything about your pets"}],
  "x-generator": {"name": "handwritten", "revision": 3}
}`

// PetstoreYAML is PetstoreJSON written as YAML.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Swagger Petstore
  version: 1.0.0
  contact:
    name: API Support
    email: support@example.com
  license:
    name: MIT
    url: https://opensource.org/licenses/MIT
  x-audience: public
servers:
  - url: https://petstore.example.com/v1
    description: Production server
  - url: /v1
paths:
  /pets:
    get:
      summary: List all pets
      operationId: listPets
      tags:
        - pets
      parameters:
        - name: limit
          in: query
          description: How many items to return at one time (max 100)
          required: false
          schema:
            type: integer
            format: int32
            maximum: 100
      responses:
        "200":
          description: A paged array of pets
          headers:
            x-next:
              description: A link to the next page of responses
              schema:
                type: string
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pets"
        default:
          $ref: "#/components/responses/Error"
    post:
      summary: Create a pet
      operationId: createPets
      tags:
        - pets
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: Null response
  /pets/{petId}:
    get:
      summary: Info for a specific pet
      operationId: showPetById
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: Expected response to a valid request
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
  x-paths-owner: pets-team
components:
  schemas:
    Pet:
      type: object
      required:
        - id
        - name
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        tag:
          type: string
          nullable: true
    Pets:
      type: array
      maxItems: 100
      items:
        $ref: "#/components/schemas/Pet"
    Error:
      type: object
      required:
        - code
        - message
      properties:
        code:
          type: integer
          format: int32
        message:
          type: string
  responses:
    Error:
      description: unexpected error
      content:
        application/json:
          schema:
            $ref: "#/components/schemas/Error"
  securitySchemes:
    api_key:
      type: apiKey
      name: api_key
      in: header
security:
  - api_key: []
tags:
  - name: pets
    description: Everything about your pets
x-generator:
  name: handwritten
  revision: 3
`

// MinimalJSON is the smallest document that decodes: the three required
// top-level fields.
const MinimalJSON = `{"openapi": "3.0.3", "info": {"title": "Minimal", "version": "1"}, "paths": {}}`

// WriteTempFile writes content to a file named name in a temporary
// directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
