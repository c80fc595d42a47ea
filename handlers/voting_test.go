// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/models"
)

func TestCastVoteEndpoint(t *testing.T) {
	core, clk, admin := newTestCore(t)
	h := NewVotingHandler(core)
	cand := election.Identity("cand-account")
	voter := election.Identity("voter-account")
	registerTestUser(t, core, admin, cand)
	registerTestUser(t, core, admin, voter)
	newTestElection(t, core, admin, clk, time.Hour, 8*time.Hour)
	admitTestMember(t, core, admin, cand, 1, election.RoleCandidate)
	admitTestMember(t, core, admin, voter, 1, election.RoleVoter)

	// candidate_number is required
	w := httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{}, voter, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusBadRequest)

	// Window not open yet
	w = httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 1}, voter, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusConflict)

	clk.now = clk.now.Add(2 * time.Hour)

	// A registered non-voter cannot vote
	w = httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 1}, cand, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusForbidden)

	// Unknown candidate number
	w = httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 7}, voter, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 1}, voter, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusCreated)

	// Votes are final
	w = httptest.NewRecorder()
	h.CastVote(w, request(t, "POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 1}, voter, map[string]string{"id": "1"}))
	assertStatus(t, w, http.StatusConflict)
}

func TestGetCandidate(t *testing.T) {
	core, clk, admin := newTestCore(t)
	h := NewVotingHandler(core)
	cand := election.Identity("cand-account")
	registerTestUser(t, core, admin, cand)
	newTestElection(t, core, admin, clk, time.Hour, 8*time.Hour)
	admitTestMember(t, core, admin, cand, 1, election.RoleCandidate)

	// Candidate lookups need no bearer token
	w := httptest.NewRecorder()
	h.GetCandidate(w, request(t, "GET", "/elections/1/candidates/1", nil, "", map[string]string{"id": "1", "number": "1"}))
	assertStatus(t, w, http.StatusOK)

	var resp models.CandidateInfoResponse
	decodeJSON(t, w, &resp)
	if resp.Profile.ID != cand {
		t.Errorf("GetCandidate = %+v, want the candidate's profile", resp.Profile)
	}

	w = httptest.NewRecorder()
	h.GetCandidate(w, request(t, "GET", "/elections/1/candidates/0", nil, "", map[string]string{"id": "1", "number": "0"}))
	assertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	h.GetCandidate(w, request(t, "GET", "/elections/1/candidates/5", nil, "", map[string]string{"id": "1", "number": "5"}))
	assertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	h.GetCandidate(w, request(t, "GET", "/elections/9/candidates/1", nil, "", map[string]string{"id": "9", "number": "1"}))
	assertStatus(t, w, http.StatusNotFound)
}
