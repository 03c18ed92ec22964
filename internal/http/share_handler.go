package http

import (
	"net/http"

	"reading-stats/internal/projections"
	"reading-stats/internal/sessions"
)

type ShareResponse struct {
	URL string `json:"url"`
}

type shareHandler struct {
	session     sessions.StatsSession
	domain      string
	goalMinutes int
}

func NewShareHandler(session sessions.StatsSession, domain string, goalMinutes int) AppHttpHandler {
	return &shareHandler{session: session, domain: domain, goalMinutes: goalMinutes}
}

// Handle serves GET /share for the viewed month and viewed day.
func (h *shareHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, ShareResponse{
		URL: projections.BuildShareURL(h.domain, h.goalMinutes, h.session.Snapshot()),
	})
	return nil
}
