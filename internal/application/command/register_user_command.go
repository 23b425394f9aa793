package command

import "thelist/internal/application/common"

type RegisterUserCommand struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
