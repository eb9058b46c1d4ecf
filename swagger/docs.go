// Package swagger registers the OpenAPI document served under /swagger.
package swagger

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
        "/auth/login": {
            "post": {
                "summary": "exchange credentials for a bearer token",
                "parameters": [
                    {"description": "credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/books": {
            "get": {
                "summary": "page through the catalog",
                "parameters": [
                    {"type": "integer", "description": "page size", "name": "size", "in": "query"},
                    {"type": "string", "description": "id of the last book of the previous page", "name": "after", "in": "query"},
                    {"type": "string", "description": "title|internalId|dateAdded|readingStatus|publishingHouse", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc|desc", "name": "dir", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "field:value equality filters", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BookPage"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "add a book",
                "parameters": [
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.BookInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Book"}}
                }
            }
        },
        "/books/browse": {
            "get": {
                "summary": "filter and sort the whole catalog",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "genre", "in": "query"},
                    {"type": "string", "name": "subGenre", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "boolean", "name": "loaned", "in": "query"},
                    {"type": "string", "description": "internalId|title|authors|genres|readingStatus", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc|desc", "name": "dir", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}
                }
            }
        },
        "/books/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "upsert a csv or xlsx sheet into the catalog",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "csv|xlsx", "name": "format", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ImportReport"}}
                }
            }
        },
        "/books/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "summary": "download the catalog as a sheet",
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"type": "string", "description": "csv|xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/books/{id}/loan": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "lend a book",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"description": "loan", "name": "loan", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoanInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.LoanRecord"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/books/{id}/return": {
            "post": {
                "security": [{"BearerAuth": []}],
                "summary": "close the open loan of a book",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}}
                }
            }
        },
        "/stats": {
            "get": {
                "summary": "collection statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}}
                }
            }
        }
    },
    "definitions": {
        "echo.HTTPError": {
            "type": "object",
            "properties": {"message": {}}
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "model.Book": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "internalId": {"type": "string"},
                "title": {"type": "string"},
                "authors": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "readingStatus": {"type": "string"},
                "rating": {"type": "integer"},
                "dateAdded": {"type": "string"}
            }
        },
        "model.BookInput": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "internalId": {"type": "string"},
                "title": {"type": "string"},
                "authors": {"type": "array", "items": {"type": "string"}},
                "genres": {"type": "array", "items": {"type": "string"}},
                "readingStatus": {"type": "string"},
                "rating": {"type": "integer"}
            }
        },
        "model.BookPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}},
                "next": {"type": "string"}
            }
        },
        "model.LoanInput": {
            "type": "object",
            "required": ["loanerName"],
            "properties": {"loanerName": {"type": "string"}, "loanDate": {"type": "string"}}
        },
        "model.LoanRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "bookId": {"type": "string"},
                "loanerName": {"type": "string"},
                "loanDate": {"type": "string"},
                "returnDate": {"type": "string"}
            }
        },
        "model.ImportReport": {
            "type": "object",
            "properties": {
                "added": {"type": "integer"},
                "updated": {"type": "integer"},
                "errors": {"type": "integer"},
                "invalidRows": {"type": "array", "items": {"type": "object"}}
            }
        },
        "model.Stats": {
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Library catalog API",
	Description:      "Personal library catalog: books, loans, wishlist, activity and sheet import/export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
