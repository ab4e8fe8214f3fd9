package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves a Swagger UI page and the OpenAPI document it loads.
func RegisterSwagger(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>seosites API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({ url: '/swagger/doc.json', dom_id: '#swagger-ui' })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "seosites API", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } }
  },
  "paths": {
    "/api/health": { "get": { "summary": "Liveness", "responses": { "200": { "description": "Server is running" } } } },
    "/ready": { "get": { "summary": "Readiness", "responses": { "200": { "description": "ready" }, "503": { "description": "document store unreachable" } } } },
    "/api/auth/login": {
      "post": {
        "summary": "Log in with email and password",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "properties": { "email": { "type": "string" }, "password": { "type": "string" } } } } } },
        "responses": { "200": { "description": "token and admin" }, "400": { "description": "missing fields" }, "401": { "description": "Invalid credentials" } }
      }
    },
    "/api/auth/verify": { "get": { "summary": "Current admin", "security": [{ "bearer": [] }], "responses": { "200": { "description": "admin" }, "401": { "description": "invalid token" } } } },
    "/api/auth/logout": { "post": { "summary": "Acknowledge logout", "security": [{ "bearer": [] }], "responses": { "200": { "description": "logged out" } } } },
    "/api/auth/register": { "post": { "summary": "Create an admin (admin only)", "security": [{ "bearer": [] }], "responses": { "201": { "description": "created" }, "403": { "description": "not an admin" } } } },
    "/api/projects": {
      "get": {
        "summary": "List projects",
        "parameters": [
          { "name": "category", "in": "query", "schema": { "type": "string" } },
          { "name": "technology", "in": "query", "schema": { "type": "string" } },
          { "name": "featured", "in": "query", "schema": { "type": "string", "enum": ["true"] } }
        ],
        "responses": { "200": { "description": "projects" } }
      },
      "post": { "summary": "Create project", "security": [{ "bearer": [] }], "responses": { "201": { "description": "created" } } }
    },
    "/api/projects/featured": { "get": { "summary": "Up to six featured projects", "responses": { "200": { "description": "projects" } } } },
    "/api/projects/{id}": {
      "get": { "summary": "Get project", "responses": { "200": { "description": "project" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update project; dropped local images are deleted", "security": [{ "bearer": [] }], "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete project and its local images", "security": [{ "bearer": [] }], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/services": { "get": { "summary": "List services", "responses": { "200": { "description": "services" } } } },
    "/api/technologies": { "get": { "summary": "Technologies grouped by category", "responses": { "200": { "description": "groups" } } } },
    "/api/testimonials": { "get": { "summary": "List testimonials", "responses": { "200": { "description": "testimonials" } } } },
    "/api/testimonials/featured": { "get": { "summary": "Featured testimonials", "responses": { "200": { "description": "testimonials" } } } },
    "/api/stats": { "get": { "summary": "List stats", "responses": { "200": { "description": "stats" } } } },
    "/api/stats/page/{page}": { "get": { "summary": "Stats for a page, including all-page stats", "responses": { "200": { "description": "stats" } } } },
    "/api/hero-content": { "get": { "summary": "List hero content", "responses": { "200": { "description": "hero content" } } } },
    "/api/hero-content/page/{page}": { "get": { "summary": "Hero content for a page", "responses": { "200": { "description": "hero" }, "404": { "description": "not found" } } } },
    "/api/company-info": {
      "get": { "summary": "Company info, created with defaults on first read", "responses": { "200": { "description": "company info" } } },
      "put": { "summary": "Update company info (admin only)", "security": [{ "bearer": [] }], "responses": { "200": { "description": "updated" } } }
    },
    "/api/process-steps": { "get": { "summary": "List process steps", "responses": { "200": { "description": "steps" } } } },
    "/api/upload": {
      "post": {
        "summary": "Upload one image",
        "security": [{ "bearer": [] }],
        "requestBody": { "content": { "multipart/form-data": { "schema": { "type": "object", "properties": { "image": { "type": "string", "format": "binary" } } } } } },
        "responses": { "200": { "description": "url, filename, path" }, "400": { "description": "not an image" }, "413": { "description": "too large" } }
      }
    },
    "/api/upload/{filename}": { "delete": { "summary": "Delete an uploaded file", "security": [{ "bearer": [] }], "responses": { "200": { "description": "deleted" }, "404": { "description": "File not found" } } } },
    "/uploads/{name}": { "get": { "summary": "Uploaded image bytes", "responses": { "200": { "description": "file" }, "404": { "description": "not found" } } } }
  }
}`
