package command

import "thelist/internal/application/common"

type CreateListCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateListCommandResult struct {
	Result *common.ListResult `json:"result"`
}
