package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/YazanAlgaleez/flowmart-ai/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// @Summary Register
// @Description Crea una cuenta nueva y da de alta el perfil en el motor
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} models.UserDoc
// @Failure 400 {string} string "body inválido"
// @Failure 409 {string} string "usuario ya existe"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "body inválido (username y password requeridos)", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Failure 401 {string} string "credenciales inválidas"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  u,
	})
}

type profileUpdateRequest struct {
	FullName  *string   `json:"fullName"`
	Age       *int      `json:"age"`
	Country   *string   `json:"country"`
	Interests *[]string `json:"interests"`
}

// @Summary Actualizar mi perfil
// @Description Update parcial: solo los campos presentes se tocan
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body profileUpdateRequest true "campos a actualizar"
// @Success 200 {object} map[string]bool
// @Router /me/profile [put]
func (h *AuthHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		FullName:  req.FullName,
		Age:       req.Age,
		Country:   req.Country,
		Interests: req.Interests,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"updated": true})
}

// @Summary Listar usuarios
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite"
// @Success 200 {array} models.UserDoc
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := queryInt(r, "limit", 50)
	users, err := h.svc.ListUsers(r.Context(), int64(limit))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(users)
}
