package handler

import (
	"net/http"

	"github.com/crewchat-dev/crewchat/internal/api"
	"github.com/crewchat-dev/crewchat/internal/domain"
	"github.com/crewchat-dev/crewchat/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, uid, err := h.auth.Register(body.Email, body.Password, body.NameFirst, body.NameLast)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TokenResponse{Token: token, AuthUserId: uid})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, uid, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TokenResponse{Token: token, AuthUserId: uid})
}
