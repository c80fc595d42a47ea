// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nvillanueva/electoral/auth"
	"github.com/nvillanueva/electoral/election"
	"github.com/nvillanueva/electoral/middleware"
	"github.com/nvillanueva/electoral/models"
)

type RegistryHandler struct {
	core *Core
}

func NewRegistryHandler(core *Core) *RegistryHandler {
	return &RegistryHandler{core: core}
}

// CreateAccount handles POST /accounts
// Issues a fresh identity and its bearer token. Open to anyone; the
// identity holds no role until the administrator accepts a registration.
func (h *RegistryHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	id := auth.NewIdentity()
	token, err := auth.IssueToken(h.core.cfg.TokenSecret, id)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("account created", "account_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateAccountResponse{
		AccountID: string(id),
		Token:     token,
	})
}

// RequestRegistration handles POST /registration
func (h *RegistryHandler) RequestRegistration(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	var req models.RequestRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.GivenName == "" || req.FamilyName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "given_name and family_name are required")
		return
	}
	if req.NationalID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "national_id is required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.RequestRegistration(caller, req.GivenName, req.FamilyName, req.NationalID); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("registration requested", "account_id", caller)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Registration queued for administrator review",
	})
}

// EnableRegistration handles POST /registration/enable
func (h *RegistryHandler) EnableRegistration(w http.ResponseWriter, r *http.Request) {
	h.setRegistration(w, r, true)
}

// DisableRegistration handles POST /registration/disable
func (h *RegistryHandler) DisableRegistration(w http.ResponseWriter, r *http.Request) {
	h.setRegistration(w, r, false)
}

func (h *RegistryHandler) setRegistration(w http.ResponseWriter, r *http.Request, open bool) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	var err error
	if open {
		err = h.core.sys.EnableRegistration(caller)
	} else {
		err = h.core.sys.DisableRegistration(caller)
	}
	if err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("registration toggled", "open", open)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Registration state updated"})
}

// NextPending handles GET /registration/next
// Peeks the oldest pending registration without consuming it.
func (h *RegistryHandler) NextPending(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	profile, err := h.core.sys.NextPendingProfile(caller)
	if err != nil {
		engineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PendingProfileResponse{Profile: profile})
}

// ReviewNext handles POST /registration/review
func (h *RegistryHandler) ReviewNext(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	var req models.ReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	profile, err := h.core.sys.ReviewNextPending(caller, req.Accept)
	if err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("registration reviewed", "account_id", profile.ID, "accepted", req.Accept)

	middleware.JSONResponse(w, http.StatusOK, models.ReviewResponse{
		AccountID: string(profile.ID),
		Accepted:  req.Accept,
	})
}

// TransferAdministrator handles POST /admin/transfer
func (h *RegistryHandler) TransferAdministrator(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	var req models.AssignRoleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.AccountID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "account_id is required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.TransferAdministrator(caller, election.Identity(req.AccountID)); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("administrator transferred", "account_id", req.AccountID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Administrator role transferred"})
}

// AssignReportGenerator handles POST /admin/report-generator
func (h *RegistryHandler) AssignReportGenerator(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	var req models.AssignRoleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.AccountID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "account_id is required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	if err := h.core.sys.AssignReportGenerator(caller, election.Identity(req.AccountID)); err != nil {
		engineError(w, err)
		return
	}
	h.core.persist()

	slog.Info("report generator assigned", "account_id", req.AccountID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Report generator assigned"})
}

// GetUser handles GET /users/{id}
// Profiles are visible to the administrator and the report generator; any
// other caller gets the same 404 a missing user would produce.
func (h *RegistryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.core.caller(w, r)
	if !ok {
		return
	}

	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	profile, found := h.core.sys.LookupUserInfo(caller, election.Identity(userID))
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}
