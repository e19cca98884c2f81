// Package api provides REST API endpoints over the NOTAM store.
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notam_parser/internal/notam"
	"notam_parser/internal/storage"
)

// Server provides REST API access to parsed NOTAMs and on demand parsing.
type Server struct {
	pg          *storage.PostgresDB
	port        int
	authEnabled bool
	apiKeys     map[string]bool // Simple API key auth (when enabled).
}

// Config holds configuration for the API server.
type Config struct {
	Port        int
	AuthEnabled bool
	APIKeys     []string // List of valid API keys.
}

// NewServer creates a new API server.
func NewServer(pg *storage.PostgresDB, cfg Config) *Server {
	keys := make(map[string]bool)
	for _, k := range cfg.APIKeys {
		if k != "" {
			keys[k] = true
		}
	}

	return &Server{
		pg:          pg,
		port:        cfg.Port,
		authEnabled: cfg.AuthEnabled,
		apiKeys:     keys,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS for browser access.
	r.Use(corsMiddleware)

	r.Mount("/api/v1", s.Router())

	addr := ":" + strconv.Itoa(s.port)
	log.Printf("NOTAM API starting at http://localhost%s", addr)
	if s.authEnabled {
		log.Printf("Authentication: ENABLED (API key required)")
	} else {
		log.Printf("Authentication: DISABLED (open access)")
	}

	return http.ListenAndServe(addr, r)
}

// Router returns the configured chi router for embedding in other servers.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Optional authentication.
	if s.authEnabled {
		r.Use(s.authMiddleware)
	}

	r.Get("/health", s.handleHealth)
	r.Post("/parse", s.handleParse)
	// NOTAM IDs carry a slash ("A0135/20"); the URL form uses a dash.
	r.Get("/notams/{id}", s.handleGetNotam)
	r.Get("/notams/{id}/active", s.handleGetActive)
	r.Get("/live", s.handleListLive)

	return r
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authMiddleware validates API key authentication.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check X-API-Key header first.
		apiKey := r.Header.Get("X-API-Key")

		// Fall back to Authorization: Bearer <key>.
		if apiKey == "" {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				apiKey = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		// Fall back to query parameter (for simple testing).
		if apiKey == "" {
			apiKey = r.URL.Query().Get("api_key")
		}

		if apiKey == "" {
			writeError(w, http.StatusUnauthorized, "API key required")
			return
		}

		if !s.apiKeys[apiKey] {
			writeError(w, http.StatusForbidden, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NotamResponse is the JSON response for NOTAM queries.
type NotamResponse struct {
	NotamID      string          `json:"notam_id"`
	FIR          string          `json:"fir,omitempty"`
	Subject      string          `json:"subject,omitempty"`
	Condition    string          `json:"condition,omitempty"`
	Traffic      string          `json:"traffic,omitempty"`
	Locations    []string        `json:"locations,omitempty"`
	EffectiveAt  string          `json:"effective_at,omitempty"`
	ExpirationAt string          `json:"expiration_at,omitempty"`
	NoExpiration bool            `json:"no_expiration"`
	Cancelled    bool            `json:"cancelled,omitempty"`
	ReplacedBy   string          `json:"replaced_by,omitempty"`
	RawText      string          `json:"raw_text"`
	Payload      json.RawMessage `json:"payload"`
}

func notamToResponse(n *storage.CurrentNotam) NotamResponse {
	resp := NotamResponse{
		NotamID:      n.NotamID,
		FIR:          n.FIR,
		Subject:      n.Subject,
		Condition:    n.Condition,
		Traffic:      n.Traffic,
		NoExpiration: n.NoExpiration,
		Cancelled:    n.Cancelled,
		ReplacedBy:   n.ReplacedBy,
		RawText:      n.RawText,
		Payload:      json.RawMessage(n.PayloadJSON),
	}
	if n.Locations != "" {
		resp.Locations = strings.Fields(n.Locations)
	}
	if n.EffectiveAt != nil {
		resp.EffectiveAt = n.EffectiveAt.UTC().Format(time.RFC3339)
	}
	if n.ExpirationAt != nil {
		resp.ExpirationAt = n.ExpirationAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ParseResponse is the JSON response for on demand parsing.
type ParseResponse struct {
	Data      notam.Data `json:"data"`
	Schedules []string   `json:"schedules,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body: "+err.Error())
		return
	}

	text := string(body)
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		var obj struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &obj); err != nil || obj.Text == "" {
			writeError(w, http.StatusBadRequest, "JSON body must carry a \"text\" field")
			return
		}
		text = obj.Text
	}

	msg, err := notam.ParseMessage(text)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := ParseResponse{Data: msg.Data}
	if d, ok := msg.Item(notam.TypeD).(*notam.D); ok && d != nil {
		for _, sched := range d.FiveDaySchedules(time.Now().UTC()) {
			resp.Schedules = append(resp.Schedules, sched.String())
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetNotam(w http.ResponseWriter, r *http.Request) {
	notamID := urlNotamID(chi.URLParam(r, "id"))
	if notamID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	n, err := s.pg.GetCurrent(r.Context(), notamID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "NOTAM not found")
		return
	}

	writeJSON(w, http.StatusOK, notamToResponse(n))
}

// ActiveResponse answers whether a NOTAM is in force at a given instant.
type ActiveResponse struct {
	NotamID string `json:"notam_id"`
	At      string `json:"at"`
	Active  bool   `json:"active"`
}

func (s *Server) handleGetActive(w http.ResponseWriter, r *http.Request) {
	notamID := urlNotamID(chi.URLParam(r, "id"))

	at := time.Now().UTC()
	if q := r.URL.Query().Get("at"); q != "" {
		parsed, err := time.Parse(time.RFC3339, q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid at parameter (use RFC3339)")
			return
		}
		at = parsed.UTC()
	}

	n, err := s.pg.GetCurrent(r.Context(), notamID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "NOTAM not found")
		return
	}

	if n.Cancelled || n.ReplacedBy != "" {
		writeJSON(w, http.StatusOK, ActiveResponse{NotamID: notamID, At: at.Format(time.RFC3339)})
		return
	}

	// Schedules need the full parsed message, so re-parse the stored text.
	msg, err := notam.ParseMessage(n.RawText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stored text no longer parses: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ActiveResponse{
		NotamID: notamID,
		At:      at.Format(time.RFC3339),
		Active:  msg.Active(at),
	})
}

func (s *Server) handleListLive(w http.ResponseWriter, r *http.Request) {
	fir := strings.ToUpper(r.URL.Query().Get("fir"))

	notams, err := s.pg.ListLive(r.Context(), fir, time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	results := make([]NotamResponse, 0, len(notams))
	for i := range notams {
		results = append(results, notamToResponse(&notams[i]))
	}
	writeJSON(w, http.StatusOK, results)
}

// urlNotamID converts the URL form "A0135-20" to the wire form "A0135/20".
func urlNotamID(id string) string {
	return strings.ToUpper(strings.Replace(id, "-", "/", 1))
}

// Helper functions.

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
