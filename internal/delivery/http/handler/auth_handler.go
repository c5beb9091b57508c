package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"foodstall-backend/internal/delivery/dto"
	"foodstall-backend/internal/delivery/http/middleware"
	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
	"foodstall-backend/pkg/validator"
)

// CookieOptions describes the session cookie written on login and cleared on logout.
type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	authUsecase      usecase.AuthUsecase
	validator        *validator.CustomValidator
	cookie           CookieOptions
	allowDevRegister bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookie CookieOptions, allowDevRegister bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:      authUsecase,
		validator:        validator,
		cookie:           cookie,
		allowDevRegister: allowDevRegister,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a user with email, password and an optional role name
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.authUsecase.Register)
}

// RegisterDev registers a user with the admin role by default. Disabled unless configured.
func (h *AuthHandler) RegisterDev(w http.ResponseWriter, r *http.Request) {
	if !h.allowDevRegister {
		response.NotFound(w, "Not found")
		return
	}
	h.register(w, r, h.authUsecase.RegisterDev)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, fn func(context.Context, *dto.RegisterRequest) (*dto.UserResponse, error)) {
	var req dto.RegisterRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	user, err := fn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoleNotFound):
			response.BadRequest(w, "Invalid role specified")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Conflict(w, "Email already in use.")
		default:
			response.InternalServerError(w, "Failed to register user", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", "user", user)
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password. The session token is returned and set as a cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !bindCreate(w, r, h.validator, &req) {
		return
	}

	login, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalServerError(w, "Failed to login", err)
		return
	}

	http.SetCookie(w, h.sessionCookie(login.Token, int(h.cookie.MaxAge.Seconds())))
	response.Success(w, http.StatusOK, "Login successful", "user", login)
}

// Logout handles user logout
// @Summary Logout user
// @Description Destroys the current session, if any, and clears the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var identity *entity.Identity
	if id, ok := middleware.GetIdentityFromContext(r); ok {
		identity = &id
	}

	if err := h.authUsecase.Logout(r.Context(), identity); err != nil {
		response.InternalServerError(w, "Failed to log out due to an internal error.", err)
		return
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	response.Success(w, http.StatusOK, "Logged out successfully.", "", nil)
}

// Me handles getting the current user
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r)
	if !ok {
		response.Unauthorized(w, "You must be logged in to access this resource.")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, msgUserNotFound)
			return
		}
		response.InternalServerError(w, "Failed to get user info", err)
		return
	}

	response.Success(w, http.StatusOK, "User details retrieved successfully.", "user", user)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
