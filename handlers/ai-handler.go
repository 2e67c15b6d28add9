package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"zenith-project/backend/logging"
	"zenith-project/backend/services"
)

type AIHandler struct {
	AIService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{AIService: aiService}
}

type breakdownRequest struct {
	Goal string `json:"goal"`
}

func (h *AIHandler) BreakdownIntoTasks(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var req breakdownRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Goal == "" {
		http.Error(w, "Goal is required", http.StatusBadRequest)
		return
	}

	tasks, err := h.AIService.BreakdownIntoTasks(r.Context(), projectID, req.Goal)
	if err != nil {
		logging.Logger.Errorf("Event ID: AI_BREAKDOWN_FAILED, Description: %v", err)
		http.Error(w, "Failed to generate tasks", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, tasks)
}

type suggestAssigneeRequest struct {
	Description string `json:"description"`
}

func (h *AIHandler) SuggestAssignee(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var req suggestAssigneeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		http.Error(w, "Task description is required", http.StatusBadRequest)
		return
	}

	suggestion, err := h.AIService.SuggestAssigneeForTask(r.Context(), projectID, req.Description)
	if err != nil {
		logging.Logger.Errorf("Event ID: AI_SUGGEST_FAILED, Description: %v", err)
		http.Error(w, "Failed to suggest assignee", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

type summarizeRequest struct {
	Notes string `json:"notes"`
}

func (h *AIHandler) SummarizeNotes(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Notes == "" {
		http.Error(w, "Notes are required", http.StatusBadRequest)
		return
	}

	summary, err := h.AIService.SummarizeMeetingNotes(r.Context(), req.Notes)
	if err != nil {
		logging.Logger.Errorf("Event ID: AI_SUMMARY_FAILED, Description: %v", err)
		http.Error(w, "Failed to summarize notes", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
