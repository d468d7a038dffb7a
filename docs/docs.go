// Package docs holds the OpenAPI document served by gin-swagger. Keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/applications": {
			"get": {
				"tags": [
					"applications"
				],
				"summary": "List applications",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ApplicationDetail"
							}
						}
					},
					"401": {
						"description": "Not authenticated",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Students see their own, employers those on their jobs, admins and officers all.",
				"security": [
					{
						"CookieAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"applications"
				],
				"summary": "Apply to a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Application"
						}
					},
					"400": {
						"description": "Invalid input or already applied",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Only students can apply for jobs",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"description": "Job to apply to",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateApplicationRequest"
						}
					}
				]
			}
		},
		"/applications/{id}/status": {
			"patch": {
				"tags": [
					"applications"
				],
				"summary": "Update application status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Application"
						}
					},
					"400": {
						"description": "Invalid status value",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Cannot update applications for this job",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Application not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Employers may only update applications on their own jobs.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Application ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateApplicationStatusRequest"
						}
					}
				]
			}
		},
		"/employers": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List employers",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Employer"
							}
						}
					},
					"403": {
						"description": "Insufficient permissions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		},
		"/employers/{id}/approve": {
			"patch": {
				"tags": [
					"admin"
				],
				"summary": "Approve employer",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Employer"
						}
					},
					"404": {
						"description": "Employer not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Employer profile ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Health",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					}
				}
			}
		},
		"/jobs": {
			"get": {
				"tags": [
					"jobs"
				],
				"summary": "List jobs",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.JobWithEmployer"
							}
						}
					},
					"400": {
						"description": "Invalid employerId",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Not authenticated",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Lists all postings joined with the posting employer. Filter by employer with employerId.",
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Only jobs posted by this employer user id",
						"name": "employerId",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"jobs"
				],
				"summary": "Create job",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Job"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Only employers can post jobs",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "The posting always belongs to the caller.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"description": "Job posting",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateJobRequest"
						}
					}
				]
			}
		},
		"/jobs/{id}": {
			"get": {
				"tags": [
					"jobs"
				],
				"summary": "Get job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.JobWithEmployer"
						}
					},
					"400": {
						"description": "Invalid id",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Job ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/jobs/{id}/applications": {
			"get": {
				"tags": [
					"jobs"
				],
				"summary": "List applications for a job",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.ApplicationDetail"
							}
						}
					},
					"403": {
						"description": "Insufficient permissions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Job ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "User login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Verifies credentials and starts a cookie session",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"401": {
						"description": "Not authenticated",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Destroys the server-side session and clears the cookie",
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		},
		"/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Invalid input, or username/email already exists",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Registration is not allowed for this role",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Creates a user with the given role and its profile in one transaction, then starts a session.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "User registration information",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				]
			}
		},
		"/stats": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Placement statistics",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Stats"
						}
					},
					"403": {
						"description": "Insufficient permissions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		},
		"/students": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List students",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Student"
							}
						}
					},
					"403": {
						"description": "Insufficient permissions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		},
		"/user": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Not authenticated or user not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"description": "Returns the user bound to the session cookie, re-read from the store",
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"403": {
						"description": "Insufficient permissions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"CookieAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"apperrors.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.CreateApplicationRequest": {
			"type": "object",
			"required": [
				"jobId"
			],
			"properties": {
				"jobId": {
					"type": "integer",
					"example": 1
				}
			}
		},
		"dto.CreateJobRequest": {
			"type": "object",
			"required": [
				"description",
				"location",
				"requirements",
				"salary",
				"title"
			],
			"properties": {
				"description": {
					"type": "string",
					"example": "Build and ship backend services"
				},
				"location": {
					"type": "string",
					"example": "Bangalore"
				},
				"requirements": {
					"type": "string",
					"example": "Go, SQL"
				},
				"salary": {
					"type": "string",
					"example": "12 LPA"
				},
				"title": {
					"type": "string",
					"example": "Software Engineer"
				}
			}
		},
		"dto.EmployerDetails": {
			"type": "object",
			"properties": {
				"companyName": {
					"type": "string",
					"example": "TechCorp Solutions"
				},
				"industry": {
					"type": "string",
					"example": "Technology"
				},
				"website": {
					"type": "string",
					"example": "https://techcorp.example.com"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"example": "AUTH_001"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/apperrors.FieldError"
					}
				},
				"message": {
					"type": "string",
					"example": "Not authenticated"
				}
			}
		},
		"dto.HealthResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "pong"
				},
				"status": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"password",
				"username"
			],
			"properties": {
				"password": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			}
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "Logged out"
				}
			}
		},
		"dto.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"name",
				"password",
				"role",
				"username"
			],
			"properties": {
				"email": {
					"type": "string",
					"example": "alice@college.edu"
				},
				"employerDetails": {
					"$ref": "#/definitions/dto.EmployerDetails"
				},
				"name": {
					"type": "string",
					"example": "Alice Johnson"
				},
				"password": {
					"type": "string",
					"example": "Secret123"
				},
				"role": {
					"type": "string",
					"enum": [
						"admin",
						"student",
						"employer",
						"officer"
					],
					"example": "student"
				},
				"studentDetails": {
					"$ref": "#/definitions/dto.StudentDetails"
				},
				"username": {
					"type": "string",
					"example": "alice"
				}
			}
		},
		"dto.StudentDetails": {
			"type": "object",
			"properties": {
				"cgpa": {
					"type": "string",
					"example": "8.9"
				},
				"department": {
					"type": "string",
					"example": "Computer Science"
				},
				"graduationYear": {
					"type": "integer",
					"example": 2025
				},
				"resumeUrl": {
					"type": "string",
					"example": "https://example.com/resume.pdf"
				}
			}
		},
		"dto.UpdateApplicationStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"applied",
						"shortlisted",
						"selected",
						"rejected"
					],
					"example": "shortlisted"
				}
			}
		},
		"models.Application": {
			"type": "object",
			"properties": {
				"appliedAt": {
					"type": "string",
					"example": "2024-01-02T10:00:00Z"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"jobId": {
					"type": "integer",
					"example": 1
				},
				"status": {
					"type": "string",
					"enum": [
						"applied",
						"shortlisted",
						"selected",
						"rejected"
					],
					"example": "applied"
				},
				"studentId": {
					"type": "integer",
					"example": 5
				}
			}
		},
		"models.ApplicationDetail": {
			"type": "object",
			"properties": {
				"appliedAt": {
					"type": "string",
					"example": "2024-01-02T10:00:00Z"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"job": {
					"$ref": "#/definitions/models.Job"
				},
				"jobId": {
					"type": "integer",
					"example": 1
				},
				"status": {
					"type": "string",
					"enum": [
						"applied",
						"shortlisted",
						"selected",
						"rejected"
					],
					"example": "applied"
				},
				"student": {
					"$ref": "#/definitions/models.User"
				},
				"studentId": {
					"type": "integer",
					"example": 5
				}
			}
		},
		"models.Employer": {
			"type": "object",
			"properties": {
				"companyName": {
					"type": "string",
					"example": "TechCorp Solutions"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"industry": {
					"type": "string",
					"example": "Technology"
				},
				"isApproved": {
					"type": "boolean",
					"example": false
				},
				"userId": {
					"type": "integer",
					"example": 2
				},
				"website": {
					"type": "string",
					"example": "https://techcorp.example.com"
				}
			}
		},
		"models.Job": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"employerId": {
					"type": "integer",
					"example": 2
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"location": {
					"type": "string",
					"example": "Bangalore"
				},
				"postedAt": {
					"type": "string",
					"example": "2024-01-01T10:00:00Z"
				},
				"requirements": {
					"type": "string"
				},
				"salary": {
					"type": "string",
					"example": "12 LPA"
				},
				"title": {
					"type": "string",
					"example": "Software Engineer"
				}
			}
		},
		"models.JobWithEmployer": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"employer": {
					"$ref": "#/definitions/models.User"
				},
				"employerId": {
					"type": "integer",
					"example": 2
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"location": {
					"type": "string",
					"example": "Bangalore"
				},
				"postedAt": {
					"type": "string",
					"example": "2024-01-01T10:00:00Z"
				},
				"requirements": {
					"type": "string"
				},
				"salary": {
					"type": "string",
					"example": "12 LPA"
				},
				"title": {
					"type": "string",
					"example": "Software Engineer"
				}
			}
		},
		"models.Stats": {
			"type": "object",
			"properties": {
				"placements": {
					"type": "integer",
					"example": 1
				},
				"totalEmployers": {
					"type": "integer",
					"example": 3
				},
				"totalJobs": {
					"type": "integer",
					"example": 6
				},
				"totalStudents": {
					"type": "integer",
					"example": 5
				}
			}
		},
		"models.Student": {
			"type": "object",
			"properties": {
				"cgpa": {
					"type": "string",
					"example": "8.9"
				},
				"department": {
					"type": "string",
					"example": "Computer Science"
				},
				"graduationYear": {
					"type": "integer",
					"example": 2025
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"resumeUrl": {
					"type": "string",
					"example": "https://example.com/resume.pdf"
				},
				"userId": {
					"type": "integer",
					"example": 5
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"createdAt": {
					"type": "string",
					"example": "2024-01-01T10:00:00Z"
				},
				"email": {
					"type": "string",
					"example": "alice@college.edu"
				},
				"id": {
					"type": "integer",
					"example": 1
				},
				"name": {
					"type": "string",
					"example": "Alice Johnson"
				},
				"role": {
					"type": "string",
					"enum": [
						"admin",
						"student",
						"employer",
						"officer"
					],
					"example": "student"
				},
				"username": {
					"type": "string",
					"example": "alice"
				}
			}
		}
	},
	"securityDefinitions": {
		"CookieAuth": {
			"description": "Signed session cookie set by /login and /register",
			"type": "apiKey",
			"name": "placement.sid",
			"in": "cookie"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/api",
	Schemes:		  []string{"http", "https"},
	Title:			"Campus Placement API",
	Description:	  "API for the campus placement portal: students, employers, jobs and applications",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
