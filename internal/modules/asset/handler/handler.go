package handler

import (
	moduledto "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/dto"
	assetservice "github.com/hdn-james/50years-ulaw-sub000/internal/modules/asset/service"
)

type Handler struct {
	assetService *assetservice.Service
}

func New(assetService *assetservice.Service) *Handler {
	moduledto.RegisterValidations()
	return &Handler{assetService: assetService}
}
