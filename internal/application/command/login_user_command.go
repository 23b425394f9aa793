package command

import "thelist/internal/application/common"

type LoginUserCommand struct {
	// Username also accepts an email address; the login form offers one
	// field for both.
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type LoginUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
