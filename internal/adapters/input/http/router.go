package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.localOnlyMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/description.xml", s.handleDescription)

	r.Post("/api", s.handleCreateUsername)
	r.Post("/api/", s.handleCreateUsername)

	r.Route("/api/{username}", func(r chi.Router) {
		r.Get("/", s.handleFullState)
		r.Get("/config", s.handleConfig)

		r.Get("/lights", s.handleGetLights)
		r.Get("/lights/{id}", s.handleGetLight)
		r.Put("/lights/{id}/state", s.handleSetLightState)

		r.Get("/groups", s.handleGetGroups)
		r.Put("/groups/0/action", s.handleGroupAction)
	})

	return r
}
