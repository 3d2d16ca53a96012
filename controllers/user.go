package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IsuruKaushika/UNITUNES-sub000/config"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
	"github.com/IsuruKaushika/UNITUNES-sub000/utils"
)

type authResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func respondToken(w http.ResponseWriter, token string) {
	writeJSON(w, authResponse{Success: true, Token: token})
}

func StudentRegister(cfg *config.Config, students AccountStore[models.Student]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := registerForm{}
		form.Name, _ = formValue(r, "name")
		form.Email, _ = formValue(r, "email")
		form.Password, _ = formValue(r, "password")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Please enter a valid email and a password of 8+ characters")
			return
		}

		if _, err := students.ByEmail(r.Context(), form.Email); err == nil {
			respondFail(w, "User already exists")
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Msg("student register: lookup failed")
			respondFail(w, "Error registering user")
			return
		}

		hash, err := utils.HashPassword(form.Password)
		if err != nil {
			log.Error().Err(err).Msg("student register: hashing failed")
			respondFail(w, "Error registering user")
			return
		}

		contact, _ := formValue(r, "contact")
		student := &models.Student{
			ID:        primitive.NewObjectID(),
			Name:      form.Name,
			Email:     form.Email,
			Password:  hash,
			Contact:   contact,
			CreatedAt: time.Now(),
		}

		if err := students.Insert(r.Context(), student); err != nil {
			log.Error().Err(err).Msg("student register: insert failed")
			respondFail(w, "Error registering user")
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, student.ID.Hex(), ownership.RoleStudent)
		if err != nil {
			log.Error().Err(err).Msg("student register: token generation failed")
			respondFail(w, "Error registering user")
			return
		}
		respondToken(w, token)
	}
}

func StudentLogin(cfg *config.Config, students AccountStore[models.Student]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		email, _ := formValue(r, "email")
		password, _ := formValue(r, "password")

		student, err := students.ByEmail(r.Context(), email)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "User Doesn't exist")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("student login: lookup failed")
			respondFail(w, "Error logging in")
			return
		}

		if !utils.CheckPasswordHash(password, student.Password) {
			respondFail(w, "Invalid Credentials")
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, student.ID.Hex(), ownership.RoleStudent)
		if err != nil {
			log.Error().Err(err).Msg("student login: token generation failed")
			respondFail(w, "Error logging in")
			return
		}
		respondToken(w, token)
	}
}

func ProviderRegister(cfg *config.Config, providers AccountStore[models.Provider]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := registerForm{}
		form.Name, _ = formValue(r, "name")
		form.Email, _ = formValue(r, "email")
		form.Password, _ = formValue(r, "password")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Please enter a valid email and a password of 8+ characters")
			return
		}

		if _, err := providers.ByEmail(r.Context(), form.Email); err == nil {
			respondFail(w, "User already exists")
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Msg("provider register: lookup failed")
			respondFail(w, "Error registering user")
			return
		}

		hash, err := utils.HashPassword(form.Password)
		if err != nil {
			log.Error().Err(err).Msg("provider register: hashing failed")
			respondFail(w, "Error registering user")
			return
		}

		contact, _ := formValue(r, "contact")
		serviceType, _ := formValue(r, "serviceType")
		provider := &models.Provider{
			ID:          primitive.NewObjectID(),
			Name:        form.Name,
			Email:       form.Email,
			Password:    hash,
			Contact:     contact,
			ServiceType: serviceType,
			CreatedAt:   time.Now(),
		}

		if err := providers.Insert(r.Context(), provider); err != nil {
			log.Error().Err(err).Msg("provider register: insert failed")
			respondFail(w, "Error registering user")
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, provider.ID.Hex(), ownership.RoleServiceProvider)
		if err != nil {
			log.Error().Err(err).Msg("provider register: token generation failed")
			respondFail(w, "Error registering user")
			return
		}
		respondToken(w, token)
	}
}

func ProviderLogin(cfg *config.Config, providers AccountStore[models.Provider]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		email, _ := formValue(r, "email")
		password, _ := formValue(r, "password")

		provider, err := providers.ByEmail(r.Context(), email)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "User Doesn't exist")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("provider login: lookup failed")
			respondFail(w, "Error logging in")
			return
		}

		if !utils.CheckPasswordHash(password, provider.Password) {
			respondFail(w, "Invalid Credentials")
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, provider.ID.Hex(), ownership.RoleServiceProvider)
		if err != nil {
			log.Error().Err(err).Msg("provider login: token generation failed")
			respondFail(w, "Error logging in")
			return
		}
		respondToken(w, token)
	}
}

// AdminLogin checks against the configured credential; there is no stored
// admin record. The issued token carries the canonical admin id.
func AdminLogin(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		email, _ := formValue(r, "email")
		password, _ := formValue(r, "password")

		emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cfg.AdminEmail)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
		if cfg.AdminEmail == "" || !emailOK || !passOK {
			respondFail(w, "Invalid Credentials")
			return
		}

		token, err := utils.GenerateJWT(cfg.JWTSecret, cfg.AdminID, ownership.RoleAdmin)
		if err != nil {
			log.Error().Err(err).Msg("admin login: token generation failed")
			respondFail(w, "Error logging in")
			return
		}
		respondToken(w, token)
	}
}
