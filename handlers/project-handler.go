package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"zenith-project/backend/logging"
	"zenith-project/backend/middleware"
	"zenith-project/backend/models"
	"zenith-project/backend/services"
)

type ProjectHandler struct {
	ProjectService *services.ProjectService
	UserService    *services.UserService
}

func NewProjectHandler(projectService *services.ProjectService, userService *services.UserService) *ProjectHandler {
	return &ProjectHandler{ProjectService: projectService, UserService: userService}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Project name is required", http.StatusBadRequest)
		return
	}

	owner, err := h.UserService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Owner not found", http.StatusUnauthorized)
		return
	}

	project, err := h.ProjectService.CreateProject(r.Context(), req.Name, req.Description, req.Image, req.Color, owner)
	if err != nil {
		logging.Logger.Errorf("Event ID: PROJECT_CREATE_FAILED, Description: %v", err)
		http.Error(w, "Failed to create project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProjectsForUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	projects, err := h.ProjectService.GetProjectsForUser(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to fetch projects", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	project, err := h.ProjectService.GetProjectByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch project", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var update services.ProjectUpdate
	if err := decodeJSON(r, &update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.ProjectService.UpdateProject(r.Context(), projectID, update); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var member models.TeamMember
	if err := decodeJSON(r, &member); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if member.ID == "" {
		http.Error(w, "Member id is required", http.StatusBadRequest)
		return
	}

	if err := h.ProjectService.AddMemberToProject(r.Context(), projectID, member); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to add member", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	projectID := vars["projectId"]
	memberID := vars["memberId"]

	if err := h.ProjectService.RemoveMemberFromProject(r.Context(), projectID, memberID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to remove member", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	if err := h.ProjectService.DeleteProject(r.Context(), projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s and its tasks deleted.", projectID)
	w.WriteHeader(http.StatusNoContent)
}
