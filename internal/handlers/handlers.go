package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/dal"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/pubsub"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/session"
)

const maxBodyBytes = 1 << 20

// keepaliveInterval is how often an idle SSE stream gets a comment line
var keepaliveInterval = 30 * time.Second

// APIHandlers contains all API handler methods
type APIHandlers struct {
	sessions *session.Manager
	pubsub   *pubsub.PubSub
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(m *session.Manager, ps *pubsub.PubSub) *APIHandlers {
	return &APIHandlers{
		sessions: m,
		pubsub:   ps,
	}
}

// Register mounts every API route on mux
func (h *APIHandlers) Register(mux *http.ServeMux) {
	// Sessions API
	mux.HandleFunc("/api/sessions/create", h.CreateSession)
	mux.HandleFunc("/api/sessions/state", h.GetSessionState)
	mux.HandleFunc("/api/sessions/delete", h.DeleteSession)

	// Roster API
	mux.HandleFunc("/api/roster/import", h.ImportRoster)
	mux.HandleFunc("/api/roster/replace", h.ReplaceRoster)
	mux.HandleFunc("/api/roster/resize", h.ResizeRoster)
	mux.HandleFunc("/api/roster/update", h.UpdateParticipant)

	// Teams API
	mux.HandleFunc("/api/teams/count", h.SetTeamCount)
	mux.HandleFunc("/api/teams/details", h.SetShowDetails)
	mux.HandleFunc("/api/teams/balance", h.Balance)
	mux.HandleFunc("/api/teams/randomize", h.Randomize)
	mux.HandleFunc("/api/teams/undo", h.Undo)
	mux.HandleFunc("/api/teams/reset", h.Reset)
	mux.HandleFunc("/api/teams/export", h.Export)
	mux.HandleFunc("/api/teams/stats", h.Stats)

	// SSE for realtime updates
	mux.HandleFunc("/api/events", h.EventsSSE)
}

// sessionResponse wraps the snapshot returned by every mutation
type sessionResponse struct {
	Session *models.Session `json:"session"`
	Applied bool            `json:"applied"`
	Count   *int            `json:"count,omitempty"`
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidTeamCount),
		errors.Is(err, models.ErrInvalidRosterSize),
		errors.Is(err, models.ErrEmptyUpdate),
		errors.Is(err, models.ErrDuplicateParticipant):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, dal.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, msg string, err error, attrs ...any) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, append(attrs, "error", err)...)
	} else {
		logger.Debug(msg, append(attrs, "error", err)...)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

// decode reads a JSON body into v. An empty body is accepted when
// allowEmpty is set.
func decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	logger.Warn("Failed to decode request", "path", r.URL.Path, "error", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
	return false
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// sessionRequest is the body shared by operations that only need a session
type sessionRequest struct {
	ID string `json:"id"`
}

func (h *APIHandlers) decodeSessionRequest(w http.ResponseWriter, r *http.Request, req any, id *string) bool {
	if !requirePost(w, r) || !decode(w, r, req, false) {
		return false
	}
	if *id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return false
	}
	return true
}

// CreateSession starts a new session. The body is optional.
func (h *APIHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req struct {
		TeamCount  int    `json:"teamCount"`
		RosterSize *int   `json:"rosterSize"`
		Roster     string `json:"roster"`
	}
	if !decode(w, r, &req, true) {
		return
	}

	s, err := h.sessions.Create(r.Context(), session.CreateOptions{
		TeamCount:  req.TeamCount,
		RosterSize: req.RosterSize,
		RosterText: req.Roster,
	})
	if err != nil {
		writeError(w, "Failed to create session", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionResponse{Session: s, Applied: true})
}

// GetSessionState returns the current session snapshot
func (h *APIHandlers) GetSessionState(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	s, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to get session", err, "session_id", id)
		return
	}
	writeJSON(w, s)
}

// DeleteSession removes a session
func (h *APIHandlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	if err := h.sessions.Delete(r.Context(), req.ID); err != nil {
		writeError(w, "Failed to delete session", err, "session_id", req.ID)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

// ImportRoster replaces the roster with the entries parsed from text
func (h *APIHandlers) ImportRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, n, err := h.sessions.Import(r.Context(), req.ID, req.Text)
	if err != nil {
		writeError(w, "Failed to import roster", err, "session_id", req.ID)
		return
	}

	logger.Info("Roster imported", "session_id", req.ID, "count", n)
	writeJSON(w, sessionResponse{Session: s, Applied: true, Count: &n})
}

// ReplaceRoster swaps in a roster given as JSON participants
func (h *APIHandlers) ReplaceRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           string               `json:"id"`
		Participants []models.Participant `json:"participants"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.Replace(r.Context(), req.ID, req.Participants)
	if err != nil {
		writeError(w, "Failed to replace roster", err, "session_id", req.ID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// ResizeRoster grows or truncates the roster
func (h *APIHandlers) ResizeRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.Resize(r.Context(), req.ID, req.Count)
	if err != nil {
		writeError(w, "Failed to resize roster", err, "session_id", req.ID, "count", req.Count)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// UpdateParticipant renames and/or re-rates one participant
func (h *APIHandlers) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID            string         `json:"id"`
		ParticipantID string         `json:"participantId"`
		Name          *string        `json:"name"`
		Rating        *models.Rating `json:"rating"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.UpdateParticipant(r.Context(), req.ID, session.ParticipantUpdate{
		ID:     req.ParticipantID,
		Name:   req.Name,
		Rating: req.Rating,
	})
	if err != nil {
		writeError(w, "Failed to update participant", err, "session_id", req.ID, "participant_id", req.ParticipantID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// SetTeamCount changes the number of teams for the next balance
func (h *APIHandlers) SetTeamCount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.SetTeamCount(r.Context(), req.ID, req.Count)
	if err != nil {
		writeError(w, "Failed to set team count", err, "session_id", req.ID, "team_count", req.Count)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// SetShowDetails toggles per-team rating details
func (h *APIHandlers) SetShowDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Show bool   `json:"show"`
	}
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.SetShowDetails(r.Context(), req.ID, req.Show)
	if err != nil {
		writeError(w, "Failed to set show details", err, "session_id", req.ID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// Balance deals the roster into balanced teams
func (h *APIHandlers) Balance(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.Balance(r.Context(), req.ID)
	if err != nil {
		writeError(w, "Failed to balance teams", err, "session_id", req.ID)
		return
	}

	logger.Info("Teams balanced", "session_id", req.ID, "team_count", s.TeamCount, "roster_size", len(s.Roster))
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// Randomize shuffles the roster unless the randomize-lock is set
func (h *APIHandlers) Randomize(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, applied, err := h.sessions.Randomize(r.Context(), req.ID)
	if err != nil {
		writeError(w, "Failed to randomize", err, "session_id", req.ID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: applied})
}

// Undo restores the previous assignment if there is one
func (h *APIHandlers) Undo(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, applied, err := h.sessions.Undo(r.Context(), req.ID)
	if err != nil {
		writeError(w, "Failed to undo", err, "session_id", req.ID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: applied})
}

// Reset sets every rating to neutral and clears the teams
func (h *APIHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeSessionRequest(w, r, &req, &req.ID) {
		return
	}

	s, err := h.sessions.Reset(r.Context(), req.ID)
	if err != nil {
		writeError(w, "Failed to reset", err, "session_id", req.ID)
		return
	}
	writeJSON(w, sessionResponse{Session: s, Applied: true})
}

// Export returns the teams as a plain text block
func (h *APIHandlers) Export(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	text, err := h.sessions.Export(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to export teams", err, "session_id", id)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, text)
}

// Stats returns the per-team summary of the current assignment
func (h *APIHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	stats, err := h.sessions.Stats(r.Context(), id)
	if err != nil {
		writeError(w, "Failed to get team stats", err, "session_id", id)
		return
	}
	writeJSON(w, stats)
}

// EventsSSE streams the events of one session as Server-Sent Events
func (h *APIHandlers) EventsSSE(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}
	if _, err := h.sessions.Get(r.Context(), id); err != nil {
		writeError(w, "Failed to open event stream", err, "session_id", id)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flush := func() {
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}

	eventChan := h.pubsub.Subscribe()
	defer h.pubsub.Unsubscribe(eventChan)

	// Send initial connection message
	fmt.Fprintf(w, "data: {\"type\":\"connected\"}\n\n")
	flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event.SessionID() != id {
				continue
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Warn("Failed to marshal event", "error", err, "event_type", event.Type)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flush()
		case <-r.Context().Done():
			logger.Debug("SSE client disconnected", "session_id", id)
			return
		case <-keepalive.C:
			fmt.Fprintf(w, ": keepalive\n\n")
			flush()
		}
	}
}
