package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/matchbook-go/internal/api/request"
	"github.com/mcoot/matchbook-go/internal/api/response"
	"github.com/mcoot/matchbook-go/internal/dependencies/clock"
	"github.com/mcoot/matchbook-go/internal/model"
	"github.com/mcoot/matchbook-go/internal/services/ledger"
	"github.com/mcoot/matchbook-go/internal/services/match"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	matches *match.Controller
	ledger  *ledger.Service
	clock   clock.Clock
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches *match.Controller, ledger *ledger.Service, clock clock.Clock) *MatchHandler {
	return &MatchHandler{
		matches: matches,
		ledger:  ledger,
		clock:   clock,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.matches.CreateMatch(r.Context(), match.CreateMatchInput{
		Player1ID:     model.PlayerID(req.Player1ID),
		Player2ID:     model.PlayerID(req.Player2ID),
		EntryFeeCents: req.EntryFeeCents,
		PrizeCents:    req.PrizeCents,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.toResponse(r.Context(), m))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.ListMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Match, len(matches))
	for i, m := range matches {
		out[i] = h.toResponse(r.Context(), m)
	}

	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	m, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(r.Context(), m))
}

// Award handles POST /api/v1/matches/{id}/award/{player_id}
func (h *MatchHandler) Award(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	matchID := model.MatchID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.AwardPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.matches.AwardPoints(r.Context(), matchID, playerID, req.Points)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(r.Context(), m))
}

// End handles POST /api/v1/matches/{id}/end
func (h *MatchHandler) End(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	m, err := h.matches.End(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(r.Context(), m))
}

// Disqualify handles POST /api/v1/matches/{id}/disqualify/{player_id}
func (h *MatchHandler) Disqualify(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	matchID := model.MatchID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	m, err := h.matches.Disqualify(r.Context(), matchID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(r.Context(), m))
}

// toResponse formats a match, resolving participant names best-effort.
// A participant deleted after the match ended leaves an empty name
// rather than failing the whole response.
func (h *MatchHandler) toResponse(ctx context.Context, m *model.Match) response.Match {
	var name1, name2 string
	if p1, err := h.ledger.GetPlayer(ctx, m.Player1ID); err == nil {
		name1 = p1.DisplayName()
	}
	if p2, err := h.ledger.GetPlayer(ctx, m.Player2ID); err == nil {
		name2 = p2.DisplayName()
	}
	return response.MatchFromModel(m, name1, name2, h.clock.Now())
}
