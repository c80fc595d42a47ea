// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"time"
)

// Identity is an opaque account identifier. The engine only ever compares
// identities for equality; it never inspects their contents.
type Identity string

// Role is the capacity a user requests when joining an election.
type Role int

const (
	RoleVoter Role = iota
	RoleCandidate
)

func (r Role) String() string {
	switch r {
	case RoleVoter:
		return "voter"
	case RoleCandidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// UserProfile is the registration record for one account. Immutable once
// the administrator accepts it.
type UserProfile struct {
	ID         Identity `json:"id"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	NationalID string   `json:"national_id"`
}

// AdmissionRequest is one entry in an election's pending queue.
type AdmissionRequest struct {
	ID   Identity `json:"id"`
	Role Role     `json:"role"`
}

// VoterRecord tracks whether an admitted voter has cast their vote.
// HasVoted transitions false to true at most once.
type VoterRecord struct {
	ID       Identity `json:"id"`
	HasVoted bool     `json:"has_voted"`
}

// CandidateTally is an admitted candidate and their running vote count.
// Number is 1-based and assigned in admission order.
type CandidateTally struct {
	ID         Identity `json:"id"`
	Number     uint32   `json:"number"`
	TotalVotes uint32   `json:"total_votes"`
}

// CandidateVotes is one row of a published tally.
type CandidateVotes struct {
	ID    Identity `json:"id"`
	Votes uint64   `json:"votes"`
}

// VoterStatus is one row of a published voter roster.
type VoterStatus struct {
	ID       Identity `json:"id"`
	HasVoted bool     `json:"has_voted"`
}

// Results is the finalized aggregate for a closed election. It is computed
// at most once and cached; once cached it never changes.
type Results struct {
	TotalVoters  uint64           `json:"total_voters"`
	VotesCast    uint64           `json:"votes_cast"`
	PerCandidate []CandidateVotes `json:"per_candidate"`
}

func (r *Results) clone() Results {
	out := Results{
		TotalVoters:  r.TotalVoters,
		VotesCast:    r.VotesCast,
		PerCandidate: make([]CandidateVotes, len(r.PerCandidate)),
	}
	copy(out.PerCandidate, r.PerCandidate)
	return out
}

// Election is one election record. The System owns every Election
// exclusively; nothing outside the engine holds a reference across calls.
type Election struct {
	ID            uint64             `json:"id"`
	Candidates    []CandidateTally   `json:"candidates"`
	Voters        []VoterRecord      `json:"voters"`
	Pending       []AdmissionRequest `json:"pending"`
	Rejected      []Identity         `json:"rejected"`
	VotingStarted bool               `json:"voting_started"`
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	Cached        *Results           `json:"results,omitempty"`
}

func (e *Election) containsPending(id Identity) bool {
	for _, req := range e.Pending {
		if req.ID == id {
			return true
		}
	}
	return false
}

func (e *Election) containsRejected(id Identity) bool {
	for _, rejected := range e.Rejected {
		if rejected == id {
			return true
		}
	}
	return false
}

func (e *Election) candidateExists(number uint32) bool {
	return number >= 1 && uint64(number) <= uint64(len(e.Candidates))
}

func (e *Election) candidate(number uint32) *CandidateTally {
	if !e.candidateExists(number) {
		return nil
	}
	return &e.Candidates[number-1]
}

func (e *Election) voter(id Identity) *VoterRecord {
	for i := range e.Voters {
		if e.Voters[i].ID == id {
			return &e.Voters[i]
		}
	}
	return nil
}

// recordVote marks the voter as having voted and increments the candidate's
// tally. The hasVoted flag is set before the increment; if the increment
// would overflow the flag is rolled back so the voter keeps their vote.
func (e *Election) recordVote(voterID Identity, number uint32) error {
	if !e.candidateExists(number) {
		return ErrCandidateNotFound
	}
	voter := e.voter(voterID)
	if voter == nil {
		return ErrNotRegisteredVoter
	}
	if voter.HasVoted {
		return ErrAlreadyVoted
	}
	voter.HasVoted = true

	candidate := e.candidate(number)
	if candidate.TotalVotes == math.MaxUint32 {
		voter.HasVoted = false
		return ErrOverflow
	}
	candidate.TotalVotes++
	return nil
}

// reviewNextPending pops the oldest admission request. Accepted voters get a
// fresh VoterRecord; accepted candidates get the next sequential candidate
// number; rejected identities go to the election's rejected set.
func (e *Election) reviewNextPending(accept bool) (AdmissionRequest, error) {
	if len(e.Pending) == 0 {
		return AdmissionRequest{}, ErrNoPendingUsers
	}
	req := e.Pending[0]
	if accept {
		switch req.Role {
		case RoleCandidate:
			if uint64(len(e.Candidates)) >= math.MaxUint32 {
				return AdmissionRequest{}, ErrOverflow
			}
			e.Pending = e.Pending[1:]
			e.Candidates = append(e.Candidates, CandidateTally{
				ID:     req.ID,
				Number: uint32(len(e.Candidates)) + 1,
			})
		default:
			e.Pending = e.Pending[1:]
			e.Voters = append(e.Voters, VoterRecord{ID: req.ID})
		}
		return req, nil
	}
	e.Pending = e.Pending[1:]
	e.Rejected = append(e.Rejected, req.ID)
	return req, nil
}

// resultsAt returns the finalized results, computing and caching them on
// first access after the window closes. Returns ErrElectionNotFinished
// while the window is still open.
func (e *Election) resultsAt(now time.Time) (*Results, error) {
	if e.EndTime.After(now) {
		return nil, ErrElectionNotFinished
	}
	if e.Cached != nil {
		return e.Cached, nil
	}

	results := &Results{
		TotalVoters:  uint64(len(e.Voters)),
		PerCandidate: make([]CandidateVotes, 0, len(e.Candidates)),
	}
	for _, v := range e.Voters {
		if v.HasVoted {
			results.VotesCast++
		}
	}
	for _, c := range e.Candidates {
		results.PerCandidate = append(results.PerCandidate, CandidateVotes{
			ID:    c.ID,
			Votes: uint64(c.TotalVotes),
		})
	}
	e.Cached = results
	return e.Cached, nil
}
