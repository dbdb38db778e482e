package handler

import (
	"net/http"

	"pdf-translator/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// mux answers a method mismatch with 404 unless told otherwise.
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	router.MethodNotAllowedHandler = methodNotAllowed

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowed

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-translator"}`))
	}).Methods("GET")

	// Initialize handlers
	documentHandler := NewDocumentHandler(
		container.GetTranslationService(),
		container.GetLogger(),
		container.GetConfig().GetMaxFileSize(),
	)
	translationHandler := NewTranslationHandler(
		container.GetTranslationService(),
		container.GetConfig(),
		container.GetLogger(),
	)

	// Document routes
	api.HandleFunc("/documents/info", documentHandler.GetInfo).Methods("POST")
	api.HandleFunc("/documents/extract", documentHandler.ExtractText).Methods("POST")
	api.HandleFunc("/documents/translate", documentHandler.TranslateDocument).Methods("POST")

	// Text translation routes
	api.HandleFunc("/translate", translationHandler.TranslateText).Methods("POST")
	api.HandleFunc("/languages", translationHandler.GetLanguages).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // dashboard dev server
			"http://localhost:4173", // dashboard preview
			"http://localhost:3000", // alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
