package request

// Discord ids are snowflakes; they travel as strings to survive JSON number
// precision limits and are parsed at the handler boundary.

type StartPromotionRequest struct {
	DiscordID  string `json:"discord_id" binding:"required"`
	SpigotName string `json:"spigot_name" binding:"required,max=64"`
}

type ConfirmPromotionRequest struct {
	DiscordID string `json:"discord_id" binding:"required"`
	Text      string `json:"text" binding:"required,max=4096"`
}
