package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"postit-board/store"
	"postit-board/token"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	admins *store.AdminStore
	secret []byte
}

func NewAuthHandler(admins *store.AdminStore, secret []byte) *AuthHandler {
	return &AuthHandler{admins: admins, secret: secret}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	admin, err := h.admins.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		log.Printf("Login - credential check failed: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	if admin == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	signed, err := token.Issue(admin.ID, h.secret, time.Now())
	if err != nil {
		log.Printf("Login - token issue failed: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"token": signed})
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAdmin provisions an additional admin account. The plaintext password
// is hashed here so the store only ever sees the hash.
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("CreateAdmin - hash failed: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	admin, err := h.admins.Create(req.Username, string(hash))
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, store.ErrConflict):
		http.Error(w, "Username already exists", http.StatusConflict)
		return
	case err != nil:
		log.Printf("CreateAdmin - insert failed: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(admin)
}
