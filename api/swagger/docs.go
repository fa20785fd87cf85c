// Package swagger registers the generated OpenAPI specification.
// Code generated by swag init; regenerate with `swag init -g cmd/api/main.go -o api/swagger`.
package swagger

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
        "/auth/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.LoginRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Session"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/auth/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Resolve session",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "delete": {
                "tags": ["auth"],
                "summary": "Delete session",
                "parameters": [
                    {"type": "string", "description": "Session token", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List menu items",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.Page-model_MenuItem"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Create menu item",
                "parameters": [
                    {
                        "description": "New item",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateMenuItemRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.MenuItem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/menu/download": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["menu"],
                "summary": "Export menu to CSV",
                "parameters": [
                    {
                        "description": "Target path",
                        "name": "payload",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.TransferRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/menu/upload": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["menu"],
                "summary": "Import menu from CSV",
                "parameters": [
                    {
                        "description": "Source path and acting user",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TransferRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/menu/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Get menu item",
                "parameters": [
                    {"type": "integer", "description": "Menu item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Update menu item",
                "parameters": [
                    {"type": "integer", "description": "Menu item id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Changed fields",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateMenuItemRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MenuItem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "delete": {
                "tags": ["menu"],
                "summary": "Delete menu item",
                "parameters": [
                    {"type": "integer", "description": "Menu item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Create message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateMessageRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/messages/employees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List chats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/repository.ChatListEntry"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Get or create employee",
                "parameters": [
                    {
                        "description": "Employee",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.EmployeeRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Employee"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/messages/employees/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Get employee",
                "parameters": [
                    {"type": "integer", "description": "Employee chat id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Employee"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Change employee",
                "parameters": [
                    {"type": "integer", "description": "Employee chat id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Changed fields",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.ChangeEmployeeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Employee"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/messages/employees/{id}/chat": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Get chat",
                "parameters": [
                    {"type": "integer", "description": "Employee chat id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.EmployeeChat"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/messages/employees/{id}/chat/mark_as_read": {
            "post": {
                "tags": ["messages"],
                "summary": "Mark chat as read",
                "parameters": [
                    {"type": "integer", "description": "Employee chat id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "List settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Setting"}}
                    }
                }
            }
        },
        "/settings/download": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["settings"],
                "summary": "Export settings to CSV",
                "parameters": [
                    {
                        "description": "Target path",
                        "name": "payload",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.TransferRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/settings/upload": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["settings"],
                "summary": "Import settings from CSV",
                "parameters": [
                    {
                        "description": "Source path and acting user",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.TransferRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/settings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get setting",
                "parameters": [
                    {"type": "integer", "description": "Setting id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Setting"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update setting",
                "parameters": [
                    {"type": "integer", "description": "Setting id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New value",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateSettingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Setting"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"},
                    {"type": "integer", "description": "Filter by role id", "name": "role", "in": "query"},
                    {"type": "boolean", "description": "Filter by active flag", "name": "is_active", "in": "query"},
                    {"type": "string", "description": "Username substring filter", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.Page-model_User"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        },
        "/users/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List roles",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Role"}}
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Changed fields",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierror.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.Detail"}}
                }
            }
        }
    },
    "definitions": {
        "apierror.Detail": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "handler.TransferRequest": {
            "type": "object",
            "properties": {
                "actor_id": {"type": "integer"},
                "path": {"type": "string"}
            }
        },
        "model.Employee": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "is_banned": {"type": "boolean"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"},
                "updated_by_id": {"type": "integer"}
            }
        },
        "model.Message": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "employee_id": {"type": "integer"},
                "id": {"type": "integer"},
                "is_read": {"type": "boolean"},
                "manager": {"$ref": "#/definitions/model.User"},
                "manager_id": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "model.MenuItem": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "button_text": {"type": "string"},
                "created_at": {"type": "string"},
                "created_by_id": {"type": "integer"},
                "id": {"type": "integer"},
                "updated_at": {"type": "string"},
                "updated_by_id": {"type": "integer"}
            }
        },
        "model.Role": {
            "type": "object",
            "properties": {
                "can_edit_menu": {"type": "boolean"},
                "can_edit_settings": {"type": "boolean"},
                "can_edit_users": {"type": "boolean"},
                "can_send_messages": {"type": "boolean"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.Session": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "expired_at": {"type": "string"},
                "id": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "model.Setting": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "int_type": {"type": "boolean"},
                "name": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "created_by": {"$ref": "#/definitions/model.User"},
                "created_by_id": {"type": "integer"},
                "id": {"type": "integer"},
                "is_active": {"type": "boolean"},
                "role": {"$ref": "#/definitions/model.Role"},
                "role_id": {"type": "integer"},
                "updated_at": {"type": "string"},
                "updated_by": {"$ref": "#/definitions/model.User"},
                "updated_by_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "pagination.Page-model_MenuItem": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.MenuItem"}},
                "page": {"type": "integer"},
                "pages": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "pagination.Page-model_Message": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.Message"}},
                "page": {"type": "integer"},
                "pages": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "pagination.Page-model_User": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.User"}},
                "page": {"type": "integer"},
                "pages": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "repository.ChatListEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "is_banned": {"type": "boolean"},
                "last_message_at": {"type": "string"},
                "name": {"type": "string"},
                "unread_count": {"type": "integer"}
            }
        },
        "service.ChangeEmployeeRequest": {
            "type": "object",
            "required": ["updated_by_id"],
            "properties": {
                "is_banned": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 150},
                "updated_by_id": {"type": "integer"}
            }
        },
        "service.CreateMenuItemRequest": {
            "type": "object",
            "required": ["answer", "button_text", "created_by_id"],
            "properties": {
                "answer": {"type": "string", "maxLength": 2048},
                "button_text": {"type": "string", "maxLength": 64},
                "created_by_id": {"type": "integer"}
            }
        },
        "service.CreateMessageRequest": {
            "type": "object",
            "required": ["employee_id", "text"],
            "properties": {
                "employee_id": {"type": "integer"},
                "manager_id": {"type": "integer"},
                "text": {"type": "string", "maxLength": 2048}
            }
        },
        "service.CreateUserRequest": {
            "type": "object",
            "required": ["created_by_id", "password", "role_id", "username"],
            "properties": {
                "created_by_id": {"type": "integer"},
                "password": {"type": "string", "maxLength": 150, "minLength": 6},
                "role_id": {"type": "integer"},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "service.EmployeeChat": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "is_banned": {"type": "boolean"},
                "messages": {"$ref": "#/definitions/pagination.Page-model_Message"},
                "name": {"type": "string"}
            }
        },
        "service.EmployeeRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 150}
            }
        },
        "service.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "service.UpdateMenuItemRequest": {
            "type": "object",
            "required": ["updated_by_id"],
            "properties": {
                "answer": {"type": "string", "maxLength": 2048},
                "button_text": {"type": "string", "maxLength": 64},
                "updated_by_id": {"type": "integer"}
            }
        },
        "service.UpdateSettingRequest": {
            "type": "object",
            "required": ["updated_by_id"],
            "properties": {
                "updated_by_id": {"type": "integer"},
                "value": {"type": "string", "maxLength": 256}
            }
        },
        "service.UpdateUserRequest": {
            "type": "object",
            "required": ["updated_by_id"],
            "properties": {
                "is_active": {"type": "boolean"},
                "password": {"type": "string", "maxLength": 150, "minLength": 6},
                "role_id": {"type": "integer"},
                "updated_by_id": {"type": "integer"},
                "username": {"type": "string", "maxLength": 150}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/bot/api",
	Schemes:          []string{},
	Title:            "HR Helpdesk API",
	Description:      "Backend for the HR helpdesk bot and admin panel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
