package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"zenith-project/backend/middleware"
	"zenith-project/backend/models"
	"zenith-project/backend/services"
)

type TeamHandler struct {
	TeamService *services.TeamService
	UserService *services.UserService
}

func NewTeamHandler(teamService *services.TeamService, userService *services.UserService) *TeamHandler {
	return &TeamHandler{TeamService: teamService, UserService: userService}
}

type createTeamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Team name is required", http.StatusBadRequest)
		return
	}

	owner, err := h.UserService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Owner not found", http.StatusUnauthorized)
		return
	}

	team, err := h.TeamService.CreateTeam(r.Context(), req.Name, owner)
	if err != nil {
		http.Error(w, "Failed to create team", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	team, err := h.TeamService.GetTeamByID(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch team", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) GetTeamsForUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	teams, err := h.TeamService.GetTeamsForUser(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to fetch teams", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) GetTeamsForProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	teams, err := h.TeamService.GetTeamsForProject(r.Context(), projectID)
	if err != nil {
		http.Error(w, "Failed to fetch teams", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	var member models.TeamMember
	if err := decodeJSON(r, &member); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.TeamService.AddTeamMember(r.Context(), teamID, member); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			http.Error(w, "Team not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to add member", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	memberID := vars["memberId"]

	if err := h.TeamService.RemoveTeamMember(r.Context(), teamID, memberID); err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to remove member", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type changeRoleRequest struct {
	Role models.TeamRole `json:"role"`
}

func (h *TeamHandler) ChangeMemberRole(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	memberID := vars["memberId"]

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.TeamService.ChangeMemberRole(r.Context(), teamID, memberID, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamNotFound):
			http.Error(w, "Team or member not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to change role", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) AttachProject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	projectID := vars["projectId"]

	if err := h.TeamService.AttachProject(r.Context(), teamID, projectID); err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to attach project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) DetachProject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	projectID := vars["projectId"]

	if err := h.TeamService.DetachProject(r.Context(), teamID, projectID); err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to detach project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
