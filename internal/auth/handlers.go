package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/EventCentral/EC-Backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service wires the credential store and token issuer into HTTP handlers.
type Service struct {
	Store      UserStore
	Tokens     *TokenIssuer
	BcryptCost int
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (s *Service) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Full name, email and password are required", http.StatusBadRequest)
		return
	}

	email := NormalizeEmail(req.Email)

	// Fast path; the unique index on email catches concurrent duplicates.
	exists, err := s.Store.ExistsByEmail(email)
	if err != nil {
		log.Printf("[auth] email lookup error: %v", err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.BcryptCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	user := User{
		UserID:         uuid.New().String(),
		FullName:       req.FullName,
		Email:          email,
		HashedPassword: string(hashed),
		Role:           RoleUser,
	}

	if err := s.Store.Create(&user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			http.Error(w, "User already exists", http.StatusBadRequest)
			return
		}
		log.Printf("[auth] create user error: %v", err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Registered"})
}

func (s *Service) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	user, err := s.Store.FindByEmail(NormalizeEmail(req.Email))
	if err != nil {
		log.Printf("[auth] user lookup error: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	// Same response for unknown email and wrong password.
	if user == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.Tokens.Issue(*user)
	if err != nil {
		log.Printf("[auth] token issue error: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token, Role: user.Role})
}

type meResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s *Service) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing claims in context", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(meResponse{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	})
}
