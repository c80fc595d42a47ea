// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nvillanueva/electoral/middleware"
	"github.com/nvillanueva/electoral/models"
)

type VotingHandler struct {
	core *Core
}

func NewVotingHandler(core *Core) *VotingHandler {
	return &VotingHandler{core: core}
}

// CastVote handles POST /elections/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateNumber == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_number is required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.CastVote(caller, id, req.CandidateNumber); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("vote cast", "election_id", id, "candidate_number", req.CandidateNumber)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Vote cast"})
}

// GetCandidate handles GET /elections/{id}/candidates/{number}
// Public candidate profile lookup by candidate number.
func (h *VotingHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := electionID(w, r)
	if !ok {
		return
	}
	number, err := strconv.ParseUint(r.PathValue("number"), 10, 32)
	if err != nil || number == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid candidate number")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	profile, lookupErr := h.core.sys.CandidateInfo(id, uint32(number))
	if lookupErr != nil {
		engineError(w, lookupErr)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateInfoResponse{Profile: profile})
}
