package handler

import systemservice "github.com/hdn-james/50years-ulaw-sub000/internal/modules/system/service"

type Handler struct {
	systemService *systemservice.Service
}

func New(systemService *systemservice.Service) *Handler {
	return &Handler{systemService: systemService}
}
