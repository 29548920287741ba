package models

// ErrorBody is the only error shape the API emits.
type ErrorBody struct {
	Message string `json:"message"`
}

type MessageBody struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type PaletteResponse struct {
	ComplementaryColors []string `json:"complementaryColors"`
}
