package command

type RequestPasswordResetCommand struct {
	Email string `json:"email"`
}

type RequestPasswordResetCommandResult struct {
	Message string `json:"message"`
}

type ConfirmPasswordResetCommand struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type ConfirmPasswordResetCommandResult struct {
	Message string `json:"message"`
}
