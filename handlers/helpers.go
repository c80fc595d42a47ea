// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/middleware"
	"github.com/nvillanueva/electoral/report"
)

// engineErrorStatus maps every engine and report sentinel to an HTTP
// status. Unknown errors fall through to 500.
func engineErrorStatus(err error) int {
	switch {
	case errors.Is(err, election.ErrNotAdministrator),
		errors.Is(err, election.ErrNotRegistered),
		errors.Is(err, election.ErrNoPermission),
		errors.Is(err, election.ErrNotRegisteredVoter):
		return http.StatusForbidden
	case errors.Is(err, election.ErrElectionNotFound),
		errors.Is(err, election.ErrCandidateNotFound),
		errors.Is(err, election.ErrNoPendingUsers):
		return http.StatusNotFound
	case errors.Is(err, election.ErrBadStartDate),
		errors.Is(err, election.ErrBadEndDate):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrRegistrationClosed),
		errors.Is(err, election.ErrAlreadyInState),
		errors.Is(err, election.ErrIsAdministrator),
		errors.Is(err, election.ErrAlreadyRegistered),
		errors.Is(err, election.ErrAlreadyPending),
		errors.Is(err, election.ErrAlreadyRejected),
		errors.Is(err, election.ErrAlreadyPendingInElection),
		errors.Is(err, election.ErrAlreadyRejectedInElection),
		errors.Is(err, election.ErrTooEarly),
		errors.Is(err, election.ErrVotingEnded),
		errors.Is(err, election.ErrAlreadyStarted),
		errors.Is(err, election.ErrVotingAlreadyStarted),
		errors.Is(err, election.ErrElectionEnded),
		errors.Is(err, election.ErrElectionNotFinished),
		errors.Is(err, election.ErrAlreadyVoted),
		errors.Is(err, report.ErrNoVoters):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// engineError writes the mapped status with the sentinel's message.
func engineError(w http.ResponseWriter, err error) {
	middleware.ErrorResponse(w, engineErrorStatus(err), err.Error())
}

// electionID parses the {id} path value. Writes a 400 and returns false on
// garbage input.
func electionID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return 0, false
	}
	return id, true
}

// parseRole converts the wire role string to the engine enum.
func parseRole(raw string) (election.Role, bool) {
	switch raw {
	case "voter":
		return election.RoleVoter, true
	case "candidate":
		return election.RoleCandidate, true
	default:
		return 0, false
	}
}
