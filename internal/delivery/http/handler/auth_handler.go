package handler

import (
	"net/http"
	"time"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"
)

type AuthHandler struct {
	authUsecase   usecase.AuthUsecase
	validator     *validator.CustomValidator
	secureCookies bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		validator:     validator,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expiresIn int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(expiresIn),
		Expires:  time.Now().Add(time.Duration(expiresIn) * time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterForm lists the account types the registration form offers.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", map[string]interface{}{
		"user_types": []string{entity.RoleClient.String(), entity.RoleProfessional.String()},
	})
}

// Register handles user registration
// @Summary Register a new client or professional
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /registro [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err, "/registro", "Erro ao realizar cadastro")
		return
	}

	if result.Token != "" {
		h.setSessionCookie(w, result.Token, result.ExpiresIn)
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Cadastro realizado com sucesso!", result, result.Next)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Informe seu email e senha", nil)
}

// Login handles user login
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err, "/login", "Erro ao realizar login")
		return
	}

	h.setSessionCookie(w, result.Token, result.ExpiresIn)
	response.SuccessWithRedirect(w, http.StatusOK, "Login realizado com sucesso!", result, result.Next)
}

// Logout handles user logout
// @Summary Logout and revoke the current session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Sessão inválida")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		response.InternalServerError(w, "Erro ao encerrar sessão")
		return
	}

	h.clearSessionCookie(w)
	response.SuccessWithRedirect(w, http.StatusOK, "Você saiu da sua conta", nil, usecase.PathHome)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err, usecase.PathLogin, "Erro ao carregar usuário")
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

// DeleteAccount removes the caller and everything attached to the account.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.authUsecase.DeleteAccount(r.Context(), actor); err != nil {
		writeError(w, err, usecase.PathDashboard, "Erro ao excluir conta")
		return
	}

	h.clearSessionCookie(w)
	response.SuccessWithRedirect(w, http.StatusOK, "Conta excluída com sucesso", nil, usecase.PathHome)
}
