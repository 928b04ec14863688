package rest

import (
	"net/http"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/contracts"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
)

type SessionHandlers struct {
	loginUC    usecases_port.LoginUseCasePort
	logoutUC   usecases_port.LogoutUseCasePort
	registerUC usecases_port.RegisterUseCasePort
}

func NewSessionHandlers(
	loginUC usecases_port.LoginUseCasePort,
	logoutUC usecases_port.LogoutUseCasePort,
	registerUC usecases_port.RegisterUseCasePort,
) *SessionHandlers {
	return &SessionHandlers{loginUC: loginUC, logoutUC: logoutUC, registerUC: registerUC}
}

// Current обрабатывает GET /api/v1/session
func (h *SessionHandlers) Current(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	resp := SessionResponse{State: sess.State().String()}
	if user, ok := sess.CurrentUser(); ok {
		u := toUserResponse(*user)
		resp.Authenticated = true
		resp.User = &u
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// Login обрабатывает POST /api/v1/session/login
func (h *SessionHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	sess, token, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	var req LoginRequest
	if err := decodeValidated(w, r, contracts.LoginRequestV1, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	user, err := h.loginUC.Execute(r.Context(), sess, req.Email, req.Password)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponse{Success: true, Token: token, UserID: user.ID})
}

// Logout обрабатывает POST /api/v1/session/logout. Повторный вызов допустим.
func (h *SessionHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	h.logoutUC.Execute(r.Context(), sess)
	RespondWithJSON(w, http.StatusOK, struct{}{})
}

// Register обрабатывает POST /api/v1/session/register
func (h *SessionHandlers) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	sess, token, ok := sessionFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusInternalServerError, "Session is missing")
		return
	}

	var req RegisterRequest
	if err := decodeValidated(w, r, contracts.RegisterRequestV1, &req); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	// без пароля
	handlerLogger := logger.WithFields(port.Fields{"email": req.Email, "role": req.Role})

	user, err := h.registerUC.Execute(r.Context(), sess, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err)
		return
	}

	handlerLogger.Info("User registered successfully", port.Fields{"user_id": user.ID})
	RespondWithJSON(w, http.StatusCreated, AuthResponse{Success: true, Token: token, UserID: user.ID})
}
