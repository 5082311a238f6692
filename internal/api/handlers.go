package api

import (
	"log/slog"
	"net/http"
)

type APIHandler struct {
	service  Service
	basePath string
	logger   *slog.Logger
}

func NewAPIHandler(service Service, basePath string, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		service:  service,
		basePath: basePath,
		logger:   logger,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	BasePath string `json:"base_path"`
}

func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, healthResponse{
		Status:   "ok",
		Service:  h.service.Name(),
		BasePath: h.basePath,
	})
}

func (h *APIHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	writeOutcome(w, h.logger, h.service.Handle(r))
}
