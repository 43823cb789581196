package response

import "spigot-link/internal/usecase/commands"

type StartPromotionResponse struct {
	Outcome      string `json:"outcome"`
	RolesChanged bool   `json:"roles_changed"`
	Delivered    bool   `json:"delivered"`
}

func NewStartPromotionResponse(result *commands.StartResult) StartPromotionResponse {
	return StartPromotionResponse{
		Outcome:      string(result.Outcome),
		RolesChanged: result.RolesChanged,
		Delivered:    result.Delivered,
	}
}

type ConfirmPromotionResponse struct {
	Outcome      string `json:"outcome"`
	RolesChanged bool   `json:"roles_changed"`
}

func NewConfirmPromotionResponse(result *commands.ConfirmResult) ConfirmPromotionResponse {
	return ConfirmPromotionResponse{
		Outcome:      "completed",
		RolesChanged: result.RolesChanged,
	}
}

type UnlinkResponse struct {
	RolesChanged bool `json:"roles_changed"`
}
