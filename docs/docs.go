package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Todo API Documentation",
        "title": "Todo API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service Name",
                "description": "Identify the service",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Service name"
                    }
                }
            }
        },
        "/todos": {
            "get": {
                "tags": ["Todos"],
                "summary": "List Todos",
                "description": "List all todos ordered by creation time, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Envelope with the todos array"
                    },
                    "500": {
                        "description": "Storage failure"
                    }
                }
            },
            "post": {
                "tags": ["Todos"],
                "summary": "Create Todo",
                "description": "Create a new todo from non-empty text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "todo",
                        "description": "Todo text",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {
                                    "type": "string",
                                    "example": "buy milk"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Envelope with the created todo"
                    },
                    "400": {
                        "description": "Missing or empty text"
                    },
                    "500": {
                        "description": "Record could not be confirmed after insertion"
                    }
                }
            }
        },
        "/todos/{id}": {
            "put": {
                "tags": ["Todos"],
                "summary": "Update Todo",
                "description": "Partially update a todo's text and/or completed flag",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "description": "Todo id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "in": "body",
                        "name": "update",
                        "description": "Fields to change; at least one required",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {
                                    "type": "string",
                                    "example": "walk dog"
                                },
                                "completed": {
                                    "type": "boolean",
                                    "example": true
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Envelope with the updated todo"
                    },
                    "400": {
                        "description": "Bad id, bad body or nothing to update"
                    },
                    "404": {
                        "description": "No todo with that id"
                    },
                    "500": {
                        "description": "Storage failure"
                    }
                }
            },
            "delete": {
                "tags": ["Todos"],
                "summary": "Delete Todo",
                "description": "Delete a todo; absent ids still report success",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "description": "Todo id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Envelope with a confirmation message"
                    },
                    "400": {
                        "description": "Bad id"
                    },
                    "500": {
                        "description": "Storage failure"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Todo API",
	Description:      "Todo API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
