// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"errors"
	"sort"

	"github.com/nvillanueva/electoral/election"
)

// ErrNoVoters is returned by Participation when an election closed with an
// empty voter roster; the percentage is undefined there.
var ErrNoVoters = errors.New("election has no voters")

// Reader is the narrow read-only view of the engine the aggregator needs.
// The engine's own role and lifecycle checks run behind this interface, so
// the aggregator never touches core storage directly.
type Reader interface {
	VoterRoster(electionID uint64) ([]election.VoterStatus, error)
	CandidateStandings(electionID uint64) ([]election.CandidateVotes, error)
	Profile(id election.Identity) (election.UserProfile, bool)
}

// UnknownProfile is the named fallback joined in for identities whose
// profile is not visible: empty strings, not an error. Tests can tell
// "found empty" from "not found" by comparing against it.
var UnknownProfile = election.UserProfile{}

// VoterRow is one line of the voter report.
type VoterRow struct {
	ID         election.Identity `json:"id"`
	GivenName  string            `json:"given_name"`
	FamilyName string            `json:"family_name"`
	NationalID string            `json:"national_id"`
}

// Participation summarizes turnout for a closed election.
type Participation struct {
	EffectiveVotes uint64 `json:"effective_votes"`
	Percent        uint64 `json:"percent"`
}

// CandidateRow is one line of the ranked outcome.
type CandidateRow struct {
	ID         election.Identity `json:"id"`
	GivenName  string            `json:"given_name"`
	FamilyName string            `json:"family_name"`
	NationalID string            `json:"national_id"`
	Votes      uint64            `json:"votes"`
}

// Outcome is the ranked result of a closed election. Winner is nil when the
// top two candidates tie.
type Outcome struct {
	Winner  *CandidateRow  `json:"winner,omitempty"`
	Ranking []CandidateRow `json:"ranking"`
}

// Aggregator composes read-only reports from engine queries. It holds no
// state of its own.
type Aggregator struct {
	src Reader
}

// New returns an aggregator reading from src.
func New(src Reader) *Aggregator {
	return &Aggregator{src: src}
}

// Voters joins the voter roster of a closed election with the registered
// profiles. A voter whose profile cannot be seen still appears, carrying
// the UnknownProfile empty triple.
func (a *Aggregator) Voters(electionID uint64) ([]VoterRow, error) {
	roster, err := a.src.VoterRoster(electionID)
	if err != nil {
		return nil, err
	}
	rows := make([]VoterRow, 0, len(roster))
	for _, v := range roster {
		profile, ok := a.src.Profile(v.ID)
		if !ok {
			profile = UnknownProfile
		}
		rows = append(rows, VoterRow{
			ID:         v.ID,
			GivenName:  profile.GivenName,
			FamilyName: profile.FamilyName,
			NationalID: profile.NationalID,
		})
	}
	return rows, nil
}

// Participation counts effective votes and the turnout percentage, rounded
// up. An election that closed with no voters yields ErrNoVoters.
func (a *Aggregator) Participation(electionID uint64) (Participation, error) {
	roster, err := a.src.VoterRoster(electionID)
	if err != nil {
		return Participation{}, err
	}
	total := uint64(len(roster))
	if total == 0 {
		return Participation{}, ErrNoVoters
	}
	var effective uint64
	for _, v := range roster {
		if v.HasVoted {
			effective++
		}
	}
	return Participation{
		EffectiveVotes: effective,
		Percent:        (effective*100 + total - 1) / total,
	}, nil
}

// Outcome ranks candidates by votes, descending. The sort is stable, so
// candidates with equal votes keep their admission order. When the top two
// candidates tie there is no winner, but the ranking is still returned.
func (a *Aggregator) Outcome(electionID uint64) (Outcome, error) {
	standings, err := a.src.CandidateStandings(electionID)
	if err != nil {
		return Outcome{}, err
	}

	rows := make([]CandidateRow, 0, len(standings))
	for _, c := range standings {
		profile, ok := a.src.Profile(c.ID)
		if !ok {
			profile = UnknownProfile
		}
		rows = append(rows, CandidateRow{
			ID:         c.ID,
			GivenName:  profile.GivenName,
			FamilyName: profile.FamilyName,
			NationalID: profile.NationalID,
			Votes:      c.Votes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})

	out := Outcome{Ranking: rows}
	if len(rows) == 0 {
		return out, nil
	}
	if len(rows) >= 2 && rows[0].Votes == rows[1].Votes {
		return out, nil
	}
	winner := rows[0]
	out.Winner = &winner
	return out, nil
}
