// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"time"
)

// State is the single root state object of the engine: the identity
// registry, the global admission queues and the append-only election
// repository. It carries JSON tags so the snapshot store can round-trip it.
type State struct {
	Administrator    Identity      `json:"administrator"`
	ReportGenerator  Identity      `json:"report_generator,omitempty"`
	RegistrationOpen bool          `json:"registration_open"`
	Users            []UserProfile `json:"users"`
	PendingUsers     []UserProfile `json:"pending_users"`
	RejectedUsers    []Identity    `json:"rejected_users"`
	Elections        []*Election   `json:"elections"`
}

// System is the election engine. It is not safe for concurrent use; the
// host serializes every call (one mutex in the HTTP layer), so each
// operation runs to completion before the next begins.
type System struct {
	clock Clock
	state State
}

// New creates an engine with the given administrator and clock.
func New(administrator Identity, clock Clock) *System {
	return &System{
		clock: clock,
		state: State{Administrator: administrator},
	}
}

// Restore rebuilds an engine from a persisted snapshot.
func Restore(state State, clock Clock) *System {
	return &System{clock: clock, state: state}
}

// Snapshot returns a deep copy of the engine state for persistence.
func (s *System) Snapshot() State {
	out := s.state
	out.Users = append([]UserProfile(nil), s.state.Users...)
	out.PendingUsers = append([]UserProfile(nil), s.state.PendingUsers...)
	out.RejectedUsers = append([]Identity(nil), s.state.RejectedUsers...)
	out.Elections = make([]*Election, 0, len(s.state.Elections))
	for _, e := range s.state.Elections {
		c := *e
		c.Candidates = append([]CandidateTally(nil), e.Candidates...)
		c.Voters = append([]VoterRecord(nil), e.Voters...)
		c.Pending = append([]AdmissionRequest(nil), e.Pending...)
		c.Rejected = append([]Identity(nil), e.Rejected...)
		if e.Cached != nil {
			r := e.Cached.clone()
			c.Cached = &r
		}
		out.Elections = append(out.Elections, &c)
	}
	return out
}

// Administrator returns the current administrator identity.
func (s *System) Administrator() Identity {
	return s.state.Administrator
}

// RegistrationOpen reports whether registration requests are accepted.
func (s *System) RegistrationOpen() bool {
	return s.state.RegistrationOpen
}

func (s *System) isAdministrator(caller Identity) bool {
	return caller == s.state.Administrator
}

func (s *System) isReportGenerator(caller Identity) bool {
	return s.state.ReportGenerator != "" && caller == s.state.ReportGenerator
}

func (s *System) isRegistered(id Identity) bool {
	for _, u := range s.state.Users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (s *System) isPendingUser(id Identity) bool {
	for _, u := range s.state.PendingUsers {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (s *System) isRejectedUser(id Identity) bool {
	for _, r := range s.state.RejectedUsers {
		if r == id {
			return true
		}
	}
	return false
}

func (s *System) profile(id Identity) (UserProfile, bool) {
	for _, u := range s.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return UserProfile{}, false
}

func (s *System) electionByID(id uint64) *Election {
	if id >= 1 && id <= uint64(len(s.state.Elections)) {
		return s.state.Elections[id-1]
	}
	return nil
}

// ===== identity registry =====

// RequestRegistration queues a registration request for administrator
// review. Membership conflicts are checked rejected first, then registered,
// then pending.
func (s *System) RequestRegistration(caller Identity, givenName, familyName, nationalID string) error {
	if !s.state.RegistrationOpen {
		return ErrRegistrationClosed
	}
	if s.isAdministrator(caller) {
		return ErrIsAdministrator
	}
	if s.isRejectedUser(caller) {
		return ErrAlreadyRejected
	}
	if s.isRegistered(caller) {
		return ErrAlreadyRegistered
	}
	if s.isPendingUser(caller) {
		return ErrAlreadyPending
	}
	s.state.PendingUsers = append(s.state.PendingUsers, UserProfile{
		ID:         caller,
		GivenName:  givenName,
		FamilyName: familyName,
		NationalID: nationalID,
	})
	return nil
}

// NextPendingProfile returns the oldest queued registration request without
// consuming it. Administrator only.
func (s *System) NextPendingProfile(caller Identity) (UserProfile, error) {
	if !s.isAdministrator(caller) {
		return UserProfile{}, ErrNotAdministrator
	}
	if len(s.state.PendingUsers) == 0 {
		return UserProfile{}, ErrNoPendingUsers
	}
	return s.state.PendingUsers[0], nil
}

// ReviewNextPending pops the oldest registration request and either
// registers the user or moves them to the rejected set. Administrator only.
func (s *System) ReviewNextPending(caller Identity, accept bool) (UserProfile, error) {
	if !s.isAdministrator(caller) {
		return UserProfile{}, ErrNotAdministrator
	}
	if len(s.state.PendingUsers) == 0 {
		return UserProfile{}, ErrNoPendingUsers
	}
	user := s.state.PendingUsers[0]
	s.state.PendingUsers = s.state.PendingUsers[1:]
	if accept {
		s.state.Users = append(s.state.Users, user)
	} else {
		s.state.RejectedUsers = append(s.state.RejectedUsers, user.ID)
	}
	return user, nil
}

// EnableRegistration opens registration. Fails if it is already open.
func (s *System) EnableRegistration(caller Identity) error {
	if !s.isAdministrator(caller) {
		return ErrNotAdministrator
	}
	if s.state.RegistrationOpen {
		return ErrAlreadyInState
	}
	s.state.RegistrationOpen = true
	return nil
}

// DisableRegistration closes registration. Fails if it is already closed.
func (s *System) DisableRegistration(caller Identity) error {
	if !s.isAdministrator(caller) {
		return ErrNotAdministrator
	}
	if !s.state.RegistrationOpen {
		return ErrAlreadyInState
	}
	s.state.RegistrationOpen = false
	return nil
}

// TransferAdministrator hands the administrator role to another identity.
func (s *System) TransferAdministrator(caller, to Identity) error {
	if !s.isAdministrator(caller) {
		return ErrNotAdministrator
	}
	s.state.Administrator = to
	return nil
}

// AssignReportGenerator sets the report generator role, replacing any
// previous holder.
func (s *System) AssignReportGenerator(caller, to Identity) error {
	if !s.isAdministrator(caller) {
		return ErrNotAdministrator
	}
	s.state.ReportGenerator = to
	return nil
}

// LookupUserInfo returns the registered profile for id. Only the
// administrator and the report generator see profiles; every other caller
// gets a plain not-found, indistinguishable from a missing user.
func (s *System) LookupUserInfo(caller, id Identity) (UserProfile, bool) {
	if !s.isAdministrator(caller) && !s.isReportGenerator(caller) {
		return UserProfile{}, false
	}
	return s.profile(id)
}

// ===== election repository =====

// CreateElection parses the voting window and appends a new election.
// Ids are sequential from 1 and never reused.
func (s *System) CreateElection(caller Identity, startDate, endDate string) (uint64, error) {
	if !s.isAdministrator(caller) {
		return 0, ErrNotAdministrator
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, ErrBadStartDate
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, ErrBadEndDate
	}
	if uint64(len(s.state.Elections)) == math.MaxUint64 {
		return 0, ErrOverflow
	}
	id := uint64(len(s.state.Elections)) + 1
	s.state.Elections = append(s.state.Elections, &Election{
		ID:        id,
		StartTime: start,
		EndTime:   end,
	})
	return id, nil
}

// ElectionWindow returns an election's window and started flag.
// Administrator only.
func (s *System) ElectionWindow(caller Identity, id uint64) (start, end time.Time, started bool, err error) {
	if !s.isAdministrator(caller) {
		return time.Time{}, time.Time{}, false, ErrNotAdministrator
	}
	e := s.electionByID(id)
	if e == nil {
		return time.Time{}, time.Time{}, false, ErrElectionNotFound
	}
	return e.StartTime, e.EndTime, e.VotingStarted, nil
}

// StartVoting marks the election's voting as started. Administrator only,
// and only inside the voting window.
func (s *System) StartVoting(caller Identity, id uint64) error {
	if !s.isAdministrator(caller) {
		return ErrNotAdministrator
	}
	e := s.electionByID(id)
	if e == nil {
		return ErrElectionNotFound
	}
	now := s.clock()
	if now.After(e.EndTime) {
		return ErrVotingEnded
	}
	if e.VotingStarted {
		return ErrAlreadyStarted
	}
	if now.Before(e.StartTime) {
		return ErrTooEarly
	}
	e.VotingStarted = true
	return nil
}

// ===== per-election admission =====

// JoinElection queues the caller for admission to an election as a voter or
// candidate. Admission closes the moment voting starts, whether by the
// started latch or by the clock passing the start time.
func (s *System) JoinElection(caller Identity, id uint64, role Role) error {
	if !s.isRegistered(caller) {
		return ErrNotRegistered
	}
	e := s.electionByID(id)
	if e == nil {
		return ErrElectionNotFound
	}
	now := s.clock()
	if e.containsPending(caller) {
		return ErrAlreadyPendingInElection
	}
	if e.VotingStarted || e.StartTime.Before(now) {
		return ErrVotingAlreadyStarted
	}
	if e.EndTime.Before(now) {
		return ErrElectionEnded
	}
	if e.containsRejected(caller) {
		return ErrAlreadyRejectedInElection
	}
	e.Pending = append(e.Pending, AdmissionRequest{ID: caller, Role: role})
	return nil
}

// NextElectionPending returns the oldest admission request of an election
// without consuming it. Administrator only.
func (s *System) NextElectionPending(caller Identity, id uint64) (AdmissionRequest, error) {
	if !s.isAdministrator(caller) {
		return AdmissionRequest{}, ErrNotAdministrator
	}
	e := s.electionByID(id)
	if e == nil {
		return AdmissionRequest{}, ErrElectionNotFound
	}
	if len(e.Pending) == 0 {
		return AdmissionRequest{}, ErrNoPendingUsers
	}
	return e.Pending[0], nil
}

// ReviewNextElectionPending processes the oldest admission request of an
// election. Administrator only.
func (s *System) ReviewNextElectionPending(caller Identity, id uint64, accept bool) (AdmissionRequest, error) {
	if !s.isAdministrator(caller) {
		return AdmissionRequest{}, ErrNotAdministrator
	}
	e := s.electionByID(id)
	if e == nil {
		return AdmissionRequest{}, ErrElectionNotFound
	}
	return e.reviewNextPending(accept)
}

// ===== voting =====

// CastVote records the caller's vote for a candidate. The first vote cast
// inside the window latches VotingStarted. A successful vote is final; a
// failed tally increment rolls the voter's flag back.
func (s *System) CastVote(caller Identity, id uint64, candidateNumber uint32) error {
	if !s.isRegistered(caller) {
		return ErrNotRegistered
	}
	e := s.electionByID(id)
	if e == nil {
		return ErrElectionNotFound
	}
	now := s.clock()
	if !e.VotingStarted {
		if now.Before(e.StartTime) {
			return ErrTooEarly
		}
		e.VotingStarted = true
	}
	if now.After(e.EndTime) {
		return ErrVotingEnded
	}
	return e.recordVote(caller, candidateNumber)
}

// CandidateInfo returns the registered profile of a candidate in an
// election. Open to any caller, like the contract surface it mirrors.
func (s *System) CandidateInfo(id uint64, candidateNumber uint32) (UserProfile, error) {
	e := s.electionByID(id)
	if e == nil {
		return UserProfile{}, ErrElectionNotFound
	}
	c := e.candidate(candidateNumber)
	if c == nil {
		return UserProfile{}, ErrCandidateNotFound
	}
	profile, ok := s.profile(c.ID)
	if !ok {
		return UserProfile{}, ErrCandidateNotFound
	}
	return profile, nil
}

// ===== results & report accessors =====

// Results returns the memoized results of a finished election. The first
// call after the window closes computes and caches them; later calls return
// the cached values regardless of any later state.
func (s *System) Results(id uint64) (Results, error) {
	e := s.electionByID(id)
	if e == nil {
		return Results{}, ErrElectionNotFound
	}
	cached, err := e.resultsAt(s.clock())
	if err != nil {
		return Results{}, err
	}
	return cached.clone(), nil
}

// VoterRoster returns each voter of a finished election with their voted
// flag. Report generator or administrator only.
func (s *System) VoterRoster(caller Identity, id uint64) ([]VoterStatus, error) {
	if !s.isReportGenerator(caller) && !s.isAdministrator(caller) {
		return nil, ErrNoPermission
	}
	e := s.electionByID(id)
	if e == nil {
		return nil, ErrElectionNotFound
	}
	if e.EndTime.After(s.clock()) {
		return nil, ErrElectionNotFinished
	}
	roster := make([]VoterStatus, 0, len(e.Voters))
	for _, v := range e.Voters {
		roster = append(roster, VoterStatus{ID: v.ID, HasVoted: v.HasVoted})
	}
	return roster, nil
}

// CandidateStandings returns each candidate of a finished election with
// their vote total, in admission order. Report generator or administrator
// only.
func (s *System) CandidateStandings(caller Identity, id uint64) ([]CandidateVotes, error) {
	if !s.isReportGenerator(caller) && !s.isAdministrator(caller) {
		return nil, ErrNoPermission
	}
	e := s.electionByID(id)
	if e == nil {
		return nil, ErrElectionNotFound
	}
	if e.EndTime.After(s.clock()) {
		return nil, ErrElectionNotFinished
	}
	standings := make([]CandidateVotes, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		standings = append(standings, CandidateVotes{ID: c.ID, Votes: uint64(c.TotalVotes)})
	}
	return standings, nil
}
