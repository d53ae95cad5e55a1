package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/domain/response"
)

func (s *Server) handleCreateUsername(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&data); err != nil {
		writeError(w, model.ErrInvalidJSON)
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, model.ErrInvalidJSON)
		return
	}
	if _, ok := data["devicetype"]; !ok {
		writeMessage(w, http.StatusBadRequest, "devicetype not specified")
		return
	}
	writeJSON(w, http.StatusOK, response.NewUsernameSuccess())
}

func (s *Server) handleFullState(w http.ResponseWriter, r *http.Request) {
	lights, err := s.bridge.GetLights(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := s.bridge.GetConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.FullState{
		Lights: lights,
		Groups: map[string]any{},
		Config: response.NewBridgeConfig(cfg),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.bridge.GetConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.NewBridgeConfig(cfg))
}

func (s *Server) handleGetLights(w http.ResponseWriter, r *http.Request) {
	lights, err := s.bridge.GetLights(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lights)
}

func (s *Server) handleGetLight(w http.ResponseWriter, r *http.Request) {
	light, err := s.bridge.GetLight(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, light)
}

func (s *Server) handleSetLightState(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("Received invalid json")
		writeError(w, model.ErrInvalidJSON)
		return
	}

	successes, err := s.bridge.SetLightState(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successes)
}

// handleGetGroups answers with no groups; the Brilliant Lightpad needs the endpoint.
func (s *Server) handleGetGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) handleGroupAction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response.GroupActionError())
}
