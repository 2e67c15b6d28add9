package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"zenith-project/backend/middleware"
	"zenith-project/backend/models"
	"zenith-project/backend/services"
)

type InvitationHandler struct {
	InvitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{InvitationService: invitationService}
}

func (h *InvitationHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var invitation models.Invitation
	if err := decodeJSON(r, &invitation); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.InvitationService.CreateInvitation(r.Context(), invitation)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipientUnknown):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InvitationHandler) GetInvitationsForUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	invitations, err := h.InvitationService.GetInvitationsForUser(r.Context(), claims.Email)
	if err != nil {
		http.Error(w, "Failed to fetch invitations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, invitations)
}

type respondInvitationRequest struct {
	Accept bool `json:"accept"`
}

func (h *InvitationHandler) RespondToInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["invitationId"]

	var req respondInvitationRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	invitation, err := h.InvitationService.RespondToInvitation(r.Context(), invitationID, req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvitationNotFound):
			http.Error(w, "Invitation not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvitationResolved):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to respond to invitation", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, invitation)
}
