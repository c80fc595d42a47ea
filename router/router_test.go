// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/models"
	"github.com/nvillanueva/electoral/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	core, _, _ := testutil.SetupCore(t)
	mux := NewRouter(core)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	core, _, _ := testutil.SetupCore(t)
	mux := NewRouter(core)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "electoral API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	core, _, _ := testutil.SetupCore(t)
	mux := NewRouter(core)

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/registration"},
		{"POST", "/registration/enable"},
		{"GET", "/registration/next"},
		{"POST", "/admin/transfer"},
		{"GET", "/users/some-account"},
		{"POST", "/elections"},
		{"GET", "/elections/1"},
		{"POST", "/elections/1/start"},
		{"POST", "/elections/1/join"},
		{"POST", "/elections/1/votes"},
		{"GET", "/elections/1/reports/voters"},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(rt.method, rt.path, nil, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without a token = %d, want 401", rt.method, rt.path, w.Code)
		}
	}
}

// TestFullElectionLifecycle walks one election end to end over HTTP: account
// creation, registration review, admission, voting and the closing reports.
func TestFullElectionLifecycle(t *testing.T) {
	core, clk, admin := testutil.SetupCore(t)
	mux := NewRouter(core)

	do := func(method, path string, body interface{}, caller election.Identity) *httptest.ResponseRecorder {
		t.Helper()
		var headers map[string]string
		if caller != "" {
			headers = testutil.AuthHeader(t, caller)
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
		return w
	}

	// Mint accounts for a candidate and two voters
	var accounts []election.Identity
	for i := 0; i < 3; i++ {
		w := do("POST", "/accounts", nil, "")
		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.CreateAccountResponse
		testutil.AssertJSON(t, w, &resp)
		accounts = append(accounts, election.Identity(resp.AccountID))
	}
	cand, ada, bea := accounts[0], accounts[1], accounts[2]

	// Open registration and push everyone through review
	testutil.AssertStatus(t, do("POST", "/registration/enable", nil, admin), http.StatusOK)
	for i, id := range accounts {
		w := do("POST", "/registration", models.RequestRegistrationRequest{
			GivenName:  fmt.Sprintf("Given%d", i),
			FamilyName: fmt.Sprintf("Family%d", i),
			NationalID: fmt.Sprintf("N-%d", i),
		}, id)
		testutil.AssertStatus(t, w, http.StatusCreated)
		testutil.AssertStatus(t, do("POST", "/registration/review", models.ReviewRequest{Accept: true}, admin), http.StatusOK)
	}

	// Create an election opening in an hour
	start := clk.Now().Add(time.Hour)
	w := do("POST", "/elections", models.CreateElectionRequest{
		StartDate: start.Format(election.DateLayout),
		EndDate:   start.Add(8 * time.Hour).Format(election.DateLayout),
	}, admin)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.CreateElectionResponse
	testutil.AssertJSON(t, w, &created)
	if created.ElectionID != 1 {
		t.Fatalf("election id = %d, want 1", created.ElectionID)
	}

	// Admission: one candidate, two voters
	for _, m := range []struct {
		id   election.Identity
		role string
	}{{cand, models.RoleCandidate}, {ada, models.RoleVoter}, {bea, models.RoleVoter}} {
		testutil.AssertStatus(t, do("POST", "/elections/1/join", models.JoinElectionRequest{Role: m.role}, m.id), http.StatusCreated)
		testutil.AssertStatus(t, do("POST", "/elections/1/review", models.ReviewRequest{Accept: true}, admin), http.StatusOK)
	}

	// Anyone can look the candidate up by number
	w = do("GET", "/elections/1/candidates/1", nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	var info models.CandidateInfoResponse
	testutil.AssertJSON(t, w, &info)
	if info.Profile.ID != cand {
		t.Fatalf("candidate 1 = %s, want %s", info.Profile.ID, cand)
	}

	// Open the window and vote
	clk.Advance(2 * time.Hour)
	testutil.AssertStatus(t, do("POST", "/elections/1/start", nil, admin), http.StatusOK)
	testutil.AssertStatus(t, do("POST", "/elections/1/votes", models.CastVoteRequest{CandidateNumber: 1}, ada), http.StatusCreated)

	// Joining is closed once voting started
	testutil.AssertStatus(t, do("POST", "/elections/1/join", models.JoinElectionRequest{Role: models.RoleVoter}, bea), http.StatusConflict)

	// Results stay sealed until the window closes
	testutil.AssertStatus(t, do("GET", "/elections/1/results", nil, ""), http.StatusConflict)

	clk.Advance(24 * time.Hour)

	w = do("GET", "/elections/1/results", nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.Results.TotalVoters != 2 || results.Results.VotesCast != 1 {
		t.Fatalf("results = %+v, want 2 voters and 1 vote", results.Results)
	}

	// Reports need the report generator role
	testutil.AssertStatus(t, do("GET", "/elections/1/reports/outcome", nil, ada), http.StatusForbidden)
	testutil.AssertStatus(t, do("POST", "/admin/report-generator", models.AssignRoleRequest{AccountID: string(ada)}, admin), http.StatusOK)

	w = do("GET", "/elections/1/reports/participation", nil, ada)
	testutil.AssertStatus(t, w, http.StatusOK)
	var participation models.ParticipationReportResponse
	testutil.AssertJSON(t, w, &participation)
	if participation.Participation.EffectiveVotes != 1 || participation.Participation.Percent != 50 {
		t.Fatalf("participation = %+v, want 1 vote at 50%%", participation.Participation)
	}

	w = do("GET", "/elections/1/reports/outcome", nil, ada)
	testutil.AssertStatus(t, w, http.StatusOK)
	var outcome models.OutcomeReportResponse
	testutil.AssertJSON(t, w, &outcome)
	if outcome.Outcome.Winner == nil || outcome.Outcome.Winner.ID != cand {
		t.Fatalf("outcome winner = %+v, want %s", outcome.Outcome.Winner, cand)
	}

	w = do("GET", "/elections/1/reports/voters", nil, ada)
	testutil.AssertStatus(t, w, http.StatusOK)
	var voters models.VoterReportResponse
	testutil.AssertJSON(t, w, &voters)
	if len(voters.Voters) != 2 {
		t.Fatalf("voter report has %d rows, want 2", len(voters.Voters))
	}
}
