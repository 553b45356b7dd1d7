package handler

import authservice "github.com/hdn-james/50years-ulaw-sub000/internal/modules/auth/service"

type Handler struct {
	authService *authservice.Service
}

func New(authService *authservice.Service) *Handler {
	return &Handler{authService: authService}
}
