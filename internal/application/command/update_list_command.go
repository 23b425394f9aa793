package command

import "thelist/internal/application/common"

type UpdateListCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateListCommandResult struct {
	Result *common.ListResult `json:"result"`
}

// PatchListCommand is a partial update decoded from an untyped JSON body.
// Nil means "field not present". Unknown keys in the body are ignored.
type PatchListCommand struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ToggleListCommandResult struct {
	Completed bool `json:"completed"`
}
