package daemon

// Version is reported by /health. Overridden at build time with -ldflags.
var Version = "0.1.0"

const (
	searchUsageMessage   = "Use POST with JSON body containing source, destination, day, departure_time"
	missingFieldsMessage = "Missing one or more required fields"
	invalidJSONMessage   = "invalid json payload"
)

// Response headers describing how the engine run behind a 200 actually went.
const (
	headerEngineOutcome  = "X-Engine-Outcome"
	headerEngineExitCode = "X-Engine-Exit-Code"
	headerResultStatus   = "X-Result-Status"
)

// SearchRequest is the payload of POST /api/data.
type SearchRequest struct {
	Source        string `json:"source" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	Day           string `json:"day" example:"monday"`
	DepartureTime string `json:"departure_time" example:"480"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message" example:"Use POST with JSON body containing source, destination, day, departure_time"`
}

// ErrorResponse represents a standard error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"Missing one or more required fields"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// EngineSettings is the engine part of ConfigResponse.
type EngineSettings struct {
	Path       string `json:"path" example:"./main.exe"`
	InputFile  string `json:"input_file" example:"data.json"`
	OutputFile string `json:"output_file" example:"output.json"`
	Timeout    string `json:"timeout" example:"30s"`
	Isolation  string `json:"isolation" example:"per-request"`
}

// CORSSettings is the cross-origin part of ConfigResponse.
type CORSSettings struct {
	AllowedOrigin    string   `json:"allowed_origin" example:"http://localhost:5173"`
	AllowedMethods   []string `json:"allowed_methods" example:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `json:"allowed_headers" example:"Content-Type"`
	AllowCredentials bool     `json:"allow_credentials" example:"false"`
}

// ConfigResponse is the effective configuration returned by /config.
type ConfigResponse struct {
	Engine EngineSettings `json:"engine"`
	CORS   CORSSettings   `json:"cors"`
}
