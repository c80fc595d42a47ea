// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

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
	"github.com/nvillanueva/electoral/handlers"
)

// TestSecret signs bearer tokens in tests
const TestSecret = "test-token-secret"

// Epoch is the reference instant manual clocks start from
var Epoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manually advanced clock for driving the engine through
// voting windows without sleeping.
type Clock struct {
	current time.Time
}

// NewClock returns a manual clock set to the given instant.
func NewClock(at time.Time) *Clock {
	return &Clock{current: at}
}

// Now is the election.Clock function to inject into the engine.
func (c *Clock) Now() time.Time {
	return c.current
}

// Set moves the clock to an absolute instant.
func (c *Clock) Set(at time.Time) {
	c.current = at
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3419,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		TokenSecret:  TestSecret,
	}
}

// SetupCore builds a Core around a fresh engine with a manual clock set to
// Epoch and no snapshot store. Returns the core, the clock and the
// administrator identity.
func SetupCore(t *testing.T) (*handlers.Core, *Clock, election.Identity) {
	t.Helper()

	clk := NewClock(Epoch)
	admin := auth.NewIdentity()
	sys := election.New(admin, clk.Now)
	return handlers.NewCore(sys, nil, GetTestConfig()), clk, admin
}

// TokenFor issues a bearer token for an identity under the test secret
func TokenFor(t *testing.T, id election.Identity) string {
	t.Helper()

	token, err := auth.IssueToken(TestSecret, id)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// AuthHeader builds the Authorization header map for an identity
func AuthHeader(t *testing.T, id election.Identity) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + TokenFor(t, id)}
}

// RegisterUser pushes an identity through the full admission flow: open
// registration if needed, queue the request and approve it.
func RegisterUser(t *testing.T, sys *election.System, admin, id election.Identity, givenName, familyName, nationalID string) {
	t.Helper()

	if !sys.RegistrationOpen() {
		if err := sys.EnableRegistration(admin); err != nil {
			t.Fatalf("Failed to open registration: %v", err)
		}
	}
	if err := sys.RequestRegistration(id, givenName, familyName, nationalID); err != nil {
		t.Fatalf("Failed to request registration: %v", err)
	}
	if _, err := sys.ReviewNextPending(admin, true); err != nil {
		t.Fatalf("Failed to approve registration: %v", err)
	}
}

// AdmitMember queues a registered identity for an election and approves
// the admission with the given role. The election's pending queue must be
// empty when called.
func AdmitMember(t *testing.T, sys *election.System, admin, id election.Identity, electionID uint64, role election.Role) {
	t.Helper()

	if err := sys.JoinElection(id, electionID, role); err != nil {
		t.Fatalf("Failed to join election: %v", err)
	}
	if _, err := sys.ReviewNextElectionPending(admin, electionID, true); err != nil {
		t.Fatalf("Failed to approve admission: %v", err)
	}
}

// CreateTestElection creates an election whose window opens startIn after
// the clock's current instant and lasts the given duration.
func CreateTestElection(t *testing.T, sys *election.System, admin election.Identity, clk *Clock, startIn, duration time.Duration) uint64 {
	t.Helper()

	start := clk.Now().Add(startIn)
	id, err := sys.CreateElection(admin,
		start.Format(election.DateLayout),
		start.Add(duration).Format(election.DateLayout))
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
