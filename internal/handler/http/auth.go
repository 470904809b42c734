package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-forum-board/internal/app"
	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/service"
	"github.com/MKhiriev/go-forum-board/internal/store"
	"github.com/MKhiriev/go-forum-board/internal/utils"
	"github.com/MKhiriev/go-forum-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg(app.MsgUsernameAlreadyExists)
			http.Error(w, app.MsgUsernameAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.SessionToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg(app.MsgRegistrationFailed)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			// Unknown usernames and wrong passwords answer identically so
			// that the endpoint cannot be used to enumerate accounts.
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.SessionToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg(app.MsgLoginFailed)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout clears the session cookie. The operation is idempotent: logging out
// without a session, or with an already-expired one, still succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}
