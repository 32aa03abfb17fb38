package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Escola API",
        "description": "School records service: classes, students and teachers",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Turmas", "description": "Class management"},
        {"name": "Alunos", "description": "Student enrollment"},
        {"name": "Professores", "description": "Teacher assignment"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unavailable"}
                }
            }
        },
        "/turmas": {
            "get": {
                "tags": ["Turmas"],
                "summary": "List classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Store failure"}
                }
            },
            "post": {
                "tags": ["Turmas"],
                "summary": "Create class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/turmas/{id}": {
            "get": {
                "tags": ["Turmas"],
                "summary": "Get class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found"}
                }
            },
            "put": {
                "tags": ["Turmas"],
                "summary": "Update class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Class not found"}
                }
            },
            "delete": {
                "tags": ["Turmas"],
                "summary": "Delete class and its dependents",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Class not found"}
                }
            }
        },
        "/alunos": {
            "get": {
                "tags": ["Alunos"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Alunos"],
                "summary": "Enroll student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found"}
                }
            }
        },
        "/alunos/{id}": {
            "get": {
                "tags": ["Alunos"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found"}
                }
            },
            "put": {
                "tags": ["Alunos"],
                "summary": "Update student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Student or class not found"}
                }
            },
            "delete": {
                "tags": ["Alunos"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Student not found"}
                }
            }
        },
        "/professores": {
            "get": {
                "tags": ["Professores"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Professores"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found"},
                    "409": {"description": "Class already has a teacher"}
                }
            }
        },
        "/professores/{id}": {
            "get": {
                "tags": ["Professores"],
                "summary": "Get teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher not found"}
                }
            },
            "put": {
                "tags": ["Professores"],
                "summary": "Update teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Teacher or class not found"},
                    "409": {"description": "Class already has a teacher"}
                }
            },
            "delete": {
                "tags": ["Professores"],
                "summary": "Delete teacher",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Teacher not found"}
                }
            }
        }
    },
    "definitions": {
        "CreateClassRequest": {
            "type": "object",
            "required": ["name", "stage", "year"],
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "stage": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "UpdateClassRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "stage": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name", "guardianEmail", "guardianPhone", "classId"],
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "guardianEmail": {"type": "string"},
                "guardianPhone": {"type": "string"},
                "classId": {"type": "integer"}
            }
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "guardianEmail": {"type": "string"},
                "guardianPhone": {"type": "string"},
                "classId": {"type": "integer"}
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "required": ["name", "email", "phone", "classId"],
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "classId": {"type": "integer"}
            }
        },
        "UpdateTeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 130},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "classId": {"type": "integer"}
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
                "message": {"type": "string"},
                "error": {"$ref": "#/definitions/APIError"}
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
