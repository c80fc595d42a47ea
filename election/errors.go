// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Every operation on the engine fails with exactly one of these sentinels.
// Handlers match on them with errors.Is to pick a status code; nothing in
// the engine wraps one sentinel inside another.

// Authorization.
var (
	ErrNotAdministrator = errors.New("caller is not the administrator")
	ErrNotRegistered    = errors.New("caller is not a registered user")
	ErrNoPermission     = errors.New("caller may not view this data")
)

// Membership conflicts.
var (
	ErrAlreadyRegistered         = errors.New("already registered")
	ErrAlreadyPending            = errors.New("already in the pending queue")
	ErrAlreadyRejected           = errors.New("registration request was rejected")
	ErrAlreadyPendingInElection  = errors.New("already pending admission in this election")
	ErrAlreadyRejectedInElection = errors.New("already rejected from this election")
	ErrIsAdministrator           = errors.New("the administrator cannot register")
)

// Lifecycle.
var (
	ErrRegistrationClosed   = errors.New("registration is not enabled")
	ErrAlreadyInState       = errors.New("registration is already in that state")
	ErrElectionNotFound     = errors.New("no election with that id")
	ErrTooEarly             = errors.New("the voting window has not opened yet")
	ErrVotingEnded          = errors.New("the voting window has closed")
	ErrAlreadyStarted       = errors.New("voting has already started")
	ErrVotingAlreadyStarted = errors.New("voting already started, admission is closed")
	ErrElectionEnded        = errors.New("the election has ended, admission is closed")
	ErrElectionNotFinished  = errors.New("the election has not finished yet")
	ErrCandidateNotFound    = errors.New("no candidate with that number")
	ErrNotRegisteredVoter   = errors.New("caller is not a voter in this election")
)

// Integrity.
var (
	ErrAlreadyVoted   = errors.New("vote was already cast")
	ErrOverflow       = errors.New("counter overflow")
	ErrNoPendingUsers = errors.New("no pending users")
)

// Input.
var (
	ErrBadStartDate = errors.New("bad start date, expected dd-mm-YYYY HH:MM")
	ErrBadEndDate   = errors.New("bad end date, expected dd-mm-YYYY HH:MM")
)
