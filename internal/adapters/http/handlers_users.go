package http

import (
	"net/http"

	"github.com/Cherry-CIC/Cherry-Backend/internal/application"
	"github.com/Cherry-CIC/Cherry-Backend/internal/contracts"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	var req contracts.RegisterUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := h.service.RegisterUser(r.Context(), actor, application.RegisterUserInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "register_user", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User registered successfully", user)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	user, err := h.service.GetProfile(r.Context(), actor)
	if err != nil {
		status, _ := mapDomainError(err)
		logHTTPOperationError(r.Context(), "get_profile", status, err)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User fetched successfully", user)
}
