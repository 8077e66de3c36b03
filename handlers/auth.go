package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"timesheet/config"
	"timesheet/database"
	"timesheet/middleware"
	"timesheet/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	config   *config.Config
	validate *validator.Validate
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config:   cfg,
		validate: validator.New(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var user models.User
	if err := database.GetDB().Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(&user, h.config.JWTExpiration)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to generate token"})
		return
	}

	// Cookie kept alongside the bearer token for browser sessions.
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, loginResponse{Token: token, Email: user.Email, Role: user.Role})
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	var existing models.User
	err := database.GetDB().Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		respondJSON(w, http.StatusConflict, errorBody{Error: "email already registered"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to hash password"})
		return
	}

	user := models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleEmployee,
	}
	if err := database.GetDB().Create(&user).Error; err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, &user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
