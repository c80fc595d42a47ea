// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/report"
)

func TestEngineErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{election.ErrNotAdministrator, http.StatusForbidden},
		{election.ErrNotRegistered, http.StatusForbidden},
		{election.ErrNoPermission, http.StatusForbidden},
		{election.ErrNotRegisteredVoter, http.StatusForbidden},
		{election.ErrElectionNotFound, http.StatusNotFound},
		{election.ErrCandidateNotFound, http.StatusNotFound},
		{election.ErrNoPendingUsers, http.StatusNotFound},
		{election.ErrBadStartDate, http.StatusBadRequest},
		{election.ErrBadEndDate, http.StatusBadRequest},
		{election.ErrRegistrationClosed, http.StatusConflict},
		{election.ErrAlreadyVoted, http.StatusConflict},
		{election.ErrVotingAlreadyStarted, http.StatusConflict},
		{election.ErrElectionNotFinished, http.StatusConflict},
		{report.ErrNoVoters, http.StatusConflict},
		{election.ErrOverflow, http.StatusInternalServerError},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := engineErrorStatus(tt.err); got != tt.want {
			t.Errorf("engineErrorStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := parseRole("voter"); !ok || role != election.RoleVoter {
		t.Errorf("parseRole(voter) = %v, %v", role, ok)
	}
	if role, ok := parseRole("candidate"); !ok || role != election.RoleCandidate {
		t.Errorf("parseRole(candidate) = %v, %v", role, ok)
	}
	if _, ok := parseRole("observer"); ok {
		t.Error("parseRole(observer) should fail")
	}
}
