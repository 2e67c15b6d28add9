package handlers

import (
	"errors"
	"net/http"

	"zenith-project/backend/logging"
	"zenith-project/backend/middleware"
	"zenith-project/backend/models"
	"zenith-project/backend/services"
	"zenith-project/backend/utils"
)

type LoginHandler struct {
	UserService *services.UserService
}

func NewLoginHandler(userService *services.UserService) *LoginHandler {
	return &LoginHandler{UserService: userService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type authErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// authError prevodi grešku servisa u kod i lokalizovanu poruku. Nepoznate
// greške dobijaju generičku poruku umesto da procure ka klijentu.
func authError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, authErrorResponse{
		Code:    code,
		Message: utils.AuthErrorMessage(code),
	})
}

func (h *LoginHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.UserService.RegisterUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInUse):
			authError(w, http.StatusConflict, utils.AuthCodeEmailInUse)
		case errors.Is(err, services.ErrInvalidEmail):
			authError(w, http.StatusBadRequest, utils.AuthCodeInvalidEmail)
		case errors.Is(err, services.ErrWeakPassword):
			authError(w, http.StatusBadRequest, utils.AuthCodeWeakPassword)
		default:
			logging.Logger.Errorf("Event ID: REGISTER_FAILED, Description: %v", err)
			authError(w, http.StatusInternalServerError, utils.AuthCodeNetworkFailed)
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, token, err := h.UserService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			authError(w, http.StatusUnauthorized, utils.AuthCodeUserNotFound)
		case errors.Is(err, services.ErrWrongPassword):
			authError(w, http.StatusUnauthorized, utils.AuthCodeWrongPassword)
		case errors.Is(err, services.ErrInvalidEmail):
			authError(w, http.StatusBadRequest, utils.AuthCodeInvalidEmail)
		default:
			logging.Logger.Errorf("Event ID: LOGIN_FAILED, Description: %v", err)
			authError(w, http.StatusInternalServerError, utils.AuthCodeNetworkFailed)
		}
		return
	}

	logging.Logger.Infof("Event ID: USER_LOGGED_IN, Description: User %s logged in.", user.Email)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// Profile vraća nalog ulogovanog korisnika.
func (h *LoginHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromRequest(r)
	if claims == nil {
		http.Error(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
