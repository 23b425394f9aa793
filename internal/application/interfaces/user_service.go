package interfaces

import (
	"github.com/google/uuid"

	"thelist/internal/application/command"
	"thelist/internal/application/query"
)

type UserService interface {
	Register(cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	RequestPasswordReset(cmd *command.RequestPasswordResetCommand) (*command.RequestPasswordResetCommandResult, error)
	ConfirmPasswordReset(cmd *command.ConfirmPasswordResetCommand) (*command.ConfirmPasswordResetCommandResult, error)
	FindUserById(id uuid.UUID) (*query.UserQueryResult, error)
}
