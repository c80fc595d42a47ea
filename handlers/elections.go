// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/middleware"
	"github.com/nvillanueva/electoral/models"
)

type ElectionHandler struct {
	core *Core
}

func NewElectionHandler(core *Core) *ElectionHandler {
	return &ElectionHandler{core: core}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	id, err := h.core.sys.CreateElection(caller, req.StartDate, req.EndDate)
	if err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("election created", "election_id", id, "start", req.StartDate, "end", req.EndDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{ElectionID: id})
}

// GetElection handles GET /elections/{id}
// Administrator summary of the voting window, with humanized relative times.
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	start, end, started, err := h.core.sys.ElectionWindow(caller, id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ElectionSummaryResponse{
		ElectionID:    id,
		StartDate:     start.Format(election.DateLayout),
		EndDate:       end.Format(election.DateLayout),
		StartsIn:      humanize.Time(start),
		EndsIn:        humanize.Time(end),
		VotingStarted: started,
	})
}

// StartVoting handles POST /elections/{id}/start
func (h *ElectionHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.StartVoting(caller, id); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("voting started", "election_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Voting started"})
}

// JoinElection handles POST /elections/{id}/join
func (h *ElectionHandler) JoinElection(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.JoinElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	role, ok := parseRole(req.Role)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be voter or candidate")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.JoinElection(caller, id, role); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("admission requested", "election_id", id, "account_id", caller, "role", role.String())

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Admission queued for administrator review",
	})
}

// NextPending handles GET /elections/{id}/pending
func (h *ElectionHandler) NextPending(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	req, err := h.core.sys.NextElectionPending(caller, id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PendingAdmissionResponse{
		AccountID: string(req.ID),
		Role:      req.Role.String(),
	})
}

// ReviewNext handles POST /elections/{id}/review
func (h *ElectionHandler) ReviewNext(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	admission, err := h.core.sys.ReviewNextElectionPending(caller, id, req.Accept)
	if err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("admission reviewed",
		"election_id", id,
		"account_id", admission.ID,
		"role", admission.Role.String(),
		"accepted", req.Accept,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ElectionReviewResponse{
		AccountID: string(admission.ID),
		Role:      admission.Role.String(),
		Accepted:  req.Accept,
	})
}
