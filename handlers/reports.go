// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/middleware"
	"github.com/nvillanueva/electoral/models"
	"github.com/nvillanueva/electoral/report"
)

type ReportsHandler struct {
	core *Core
}

func NewReportsHandler(core *Core) *ReportsHandler {
	return &ReportsHandler{core: core}
}

// engineReader binds the aggregator's Reader capability to one caller.
// Role and lifecycle checks run inside the engine accessors.
type engineReader struct {
	sys    *election.System
	caller election.Identity
}

func (r engineReader) VoterRoster(electionID uint64) ([]election.VoterStatus, error) {
	return r.sys.VoterRoster(r.caller, electionID)
}

func (r engineReader) CandidateStandings(electionID uint64) ([]election.CandidateVotes, error) {
	return r.sys.CandidateStandings(r.caller, electionID)
}

func (r engineReader) Profile(id election.Identity) (election.UserProfile, bool) {
	return r.sys.LookupUserInfo(r.caller, id)
}

// GetResults handles GET /elections/{id}/results
// Results are sealed until the window closes; after that the first call
// memoizes them and every later call returns the identical payload.
func (h *ReportsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	results, err := h.core.sys.Results(id)
	if err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		ElectionID: id,
		Results:    results,
	})
}

// GetVoterReport handles GET /elections/{id}/reports/voters
func (h *ReportsHandler) GetVoterReport(w http.ResponseWriter, r *http.Request) {
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

	voters, err := report.New(engineReader{sys: h.core.sys, caller: caller}).Voters(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterReportResponse{
		ElectionID: id,
		Voters:     voters,
	})
}

// GetParticipationReport handles GET /elections/{id}/reports/participation
func (h *ReportsHandler) GetParticipationReport(w http.ResponseWriter, r *http.Request) {
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

	participation, err := report.New(engineReader{sys: h.core.sys, caller: caller}).Participation(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipationReportResponse{
		ElectionID:    id,
		Participation: participation,
	})
}

// GetOutcomeReport handles GET /elections/{id}/reports/outcome
func (h *ReportsHandler) GetOutcomeReport(w http.ResponseWriter, r *http.Request) {
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

	outcome, err := report.New(engineReader{sys: h.core.sys, caller: caller}).Outcome(id)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OutcomeReportResponse{
		ElectionID: id,
		Outcome:    outcome,
	})
}
