package handler

type registerRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	DisplayName string `json:"displayName"  validate:"omitempty,max=128"`
	PhoneNumber string `json:"phoneNumber"  validate:"omitempty,max=32"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyTokenRequest struct {
	IDToken string `json:"idToken"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type uidResponse struct {
	UID string `json:"uid"`
}

type statusResponse struct {
	Status string `json:"status"`
}
