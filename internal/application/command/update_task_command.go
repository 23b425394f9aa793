package command

import "thelist/internal/application/common"

type UpdateTaskCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}

type ToggleTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
