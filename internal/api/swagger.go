package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/swaggo/swag"
)

// SwaggerUIHandler serves the interactive Swagger UI.
func SwaggerUIHandler() http.HandlerFunc {
	return httpSwagger.WrapHandler
}

// OpenAPISpecHandler serves the raw OpenAPI document as JSON.
func OpenAPISpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "spec unavailable"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	}
}
