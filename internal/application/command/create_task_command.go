package command

import "thelist/internal/application/common"

type CreateTaskCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
