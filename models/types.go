// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/report"
)

// Admission role constants, the wire form of election.Role
const (
	RoleVoter     = "voter"
	RoleCandidate = "candidate"
)

// Request types

type RequestRegistrationRequest struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	NationalID string `json:"national_id"`
}

type ReviewRequest struct {
	Accept bool `json:"accept"`
}

type AssignRoleRequest struct {
	AccountID string `json:"account_id"`
}

type CreateElectionRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type JoinElectionRequest struct {
	Role string `json:"role"`
}

type CastVoteRequest struct {
	CandidateNumber uint32 `json:"candidate_number"`
}

// Response types

type CreateAccountResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PendingProfileResponse struct {
	Profile election.UserProfile `json:"profile"`
}

type ReviewResponse struct {
	AccountID string `json:"account_id"`
	Accepted  bool   `json:"accepted"`
}

type CreateElectionResponse struct {
	ElectionID uint64 `json:"election_id"`
}

type ElectionSummaryResponse struct {
	ElectionID    uint64 `json:"election_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartsIn      string `json:"starts_in"`
	EndsIn        string `json:"ends_in"`
	VotingStarted bool   `json:"voting_started"`
}

type PendingAdmissionResponse struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}

type ElectionReviewResponse struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Accepted  bool   `json:"accepted"`
}

type CandidateInfoResponse struct {
	Profile election.UserProfile `json:"profile"`
}

type ResultsResponse struct {
	ElectionID uint64           `json:"election_id"`
	Results    election.Results `json:"results"`
}

type VoterReportResponse struct {
	ElectionID uint64            `json:"election_id"`
	Voters     []report.VoterRow `json:"voters"`
}

type ParticipationReportResponse struct {
	ElectionID    uint64               `json:"election_id"`
	Participation report.Participation `json:"participation"`
}

type OutcomeReportResponse struct {
	ElectionID uint64         `json:"election_id"`
	Outcome    report.Outcome `json:"outcome"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
