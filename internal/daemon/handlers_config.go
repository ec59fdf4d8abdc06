package daemon

import (
	"net/http"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// handleConfig godoc
// @Summary Get configuration
// @Description Returns the engine and CORS configuration fixed at startup.
// @Tags config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.config
	writeJSON(w, http.StatusOK, ConfigResponse{
		Engine: EngineSettings{
			Path:       cfg.Engine.Path,
			InputFile:  cfg.Engine.InputFile,
			OutputFile: cfg.Engine.OutputFile,
			Timeout:    cfg.Engine.Timeout.String(),
			Isolation:  cfg.Engine.Isolation,
		},
		CORS: CORSSettings{
			AllowedOrigin:    cfg.CORS.AllowedOrigin,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
		},
	})
}
