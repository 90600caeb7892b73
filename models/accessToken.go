package models

// TokenBinding is the identity a valid access token resolves to: the
// panel slot the token was provisioned under and the area holding it.
type TokenBinding struct {
	PanelID  string `json:"panelId"`
	AreaName string `json:"areaName"`
}
