package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"zenith-project/backend/board"
	"zenith-project/backend/services"
)

type BoardHandler struct {
	BoardService *services.BoardService
}

func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{BoardService: boardService}
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	cols, err := h.BoardService.GetBoard(r.Context(), projectID)
	if err != nil {
		http.Error(w, "Failed to fetch board", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cols)
}

func (h *BoardHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var ev board.MoveEvent
	if err := decodeJSON(r, &ev); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := h.BoardService.MoveTask(r.Context(), projectID, ev)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrUnknownColumn), errors.Is(err, board.ErrIndexOutOfRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, board.ErrTaskNotInProject):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to move task", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, task)
}
