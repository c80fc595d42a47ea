// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/nvillanueva/electoral/handlers"
	"github.com/nvillanueva/electoral/middleware"
)

func NewRouter(core *handlers.Core) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	registryHandler := handlers.NewRegistryHandler(core)
	electionHandler := handlers.NewElectionHandler(core)
	votingHandler := handlers.NewVotingHandler(core)
	reportsHandler := handlers.NewReportsHandler(core)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and registration
	mux.HandleFunc("POST /accounts", middleware.WithLogging(registryHandler.CreateAccount))
	mux.HandleFunc("POST /registration", middleware.WithLogging(registryHandler.RequestRegistration))
	mux.HandleFunc("POST /registration/enable", middleware.WithLogging(registryHandler.EnableRegistration))
	mux.HandleFunc("POST /registration/disable", middleware.WithLogging(registryHandler.DisableRegistration))
	mux.HandleFunc("GET /registration/next", middleware.WithLogging(registryHandler.NextPending))
	mux.HandleFunc("POST /registration/review", middleware.WithLogging(registryHandler.ReviewNext))

	// Role management (admin)
	mux.HandleFunc("POST /admin/transfer", middleware.WithLogging(registryHandler.TransferAdministrator))
	mux.HandleFunc("POST /admin/report-generator", middleware.WithLogging(registryHandler.AssignReportGenerator))

	// Identity lookups (admin / report generator)
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(registryHandler.GetUser))

	// Election lifecycle (admin)
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("POST /elections/{id}/start", middleware.WithLogging(electionHandler.StartVoting))
	mux.HandleFunc("GET /elections/{id}/pending", middleware.WithLogging(electionHandler.NextPending))
	mux.HandleFunc("POST /elections/{id}/review", middleware.WithLogging(electionHandler.ReviewNext))

	// Admission and voting (registered users)
	mux.HandleFunc("POST /elections/{id}/join", middleware.WithLogging(electionHandler.JoinElection))
	mux.HandleFunc("POST /elections/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /elections/{id}/candidates/{number}", middleware.WithLogging(votingHandler.GetCandidate))

	// Results and reports
	mux.HandleFunc("GET /elections/{id}/results", middleware.WithLogging(reportsHandler.GetResults))
	mux.HandleFunc("GET /elections/{id}/reports/voters", middleware.WithLogging(reportsHandler.GetVoterReport))
	mux.HandleFunc("GET /elections/{id}/reports/participation", middleware.WithLogging(reportsHandler.GetParticipationReport))
	mux.HandleFunc("GET /elections/{id}/reports/outcome", middleware.WithLogging(reportsHandler.GetOutcomeReport))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("electoral API v1"))
	})

	return mux
}
