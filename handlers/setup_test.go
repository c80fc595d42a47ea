// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nvillanueva/electoral/auth"
	"github.com/nvillanueva/electoral/cliparse"
	"github.com/nvillanueva/electoral/election"
)

const testSecret = "handlers-test-secret"

var testEpoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

// newTestCore builds a core with a manual clock and no snapshot store
func newTestCore(t *testing.T) (*Core, *testClock, election.Identity) {
	t.Helper()

	clk := &testClock{now: testEpoch}
	admin := auth.NewIdentity()
	sys := election.New(admin, clk.Now)
	cfg := cliparse.Config{Port: 3419, TokenSecret: testSecret}
	return NewCore(sys, nil, cfg), clk, admin
}

func bearer(t *testing.T, id election.Identity) string {
	t.Helper()

	token, err := auth.IssueToken(testSecret, id)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return "Bearer " + token
}

// request builds an authenticated request with optional path values
func request(t *testing.T, method, path string, body interface{}, caller election.Identity, pathValues map[string]string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if caller != "" {
		req.Header.Set("Authorization", bearer(t, caller))
	}
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// registerTestUser drives the engine directly through the admission flow
func registerTestUser(t *testing.T, core *Core, admin, id election.Identity) {
	t.Helper()

	if !core.sys.RegistrationOpen() {
		if err := core.sys.EnableRegistration(admin); err != nil {
			t.Fatalf("EnableRegistration() error = %v", err)
		}
	}
	if err := core.sys.RequestRegistration(id, "Test", "User", "X-0000"); err != nil {
		t.Fatalf("RequestRegistration() error = %v", err)
	}
	if _, err := core.sys.ReviewNextPending(admin, true); err != nil {
		t.Fatalf("ReviewNextPending() error = %v", err)
	}
}

// newTestElection opens a window [now+startIn, now+startIn+d]
func newTestElection(t *testing.T, core *Core, admin election.Identity, clk *testClock, startIn, d time.Duration) uint64 {
	t.Helper()

	start := clk.now.Add(startIn)
	id, err := core.sys.CreateElection(admin,
		start.Format(election.DateLayout),
		start.Add(d).Format(election.DateLayout))
	if err != nil {
		t.Fatalf("CreateElection() error = %v", err)
	}
	return id
}

// admitTestMember queues and approves one admission
func admitTestMember(t *testing.T, core *Core, admin, id election.Identity, electionID uint64, role election.Role) {
	t.Helper()

	if err := core.sys.JoinElection(id, electionID, role); err != nil {
		t.Fatalf("JoinElection() error = %v", err)
	}
	if _, err := core.sys.ReviewNextElectionPending(admin, electionID, true); err != nil {
		t.Fatalf("ReviewNextElectionPending() error = %v", err)
	}
}
