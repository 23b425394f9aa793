package query

import "thelist/internal/application/common"

type ListTasksQuery struct {
	Search string
	Filter string
	Sort   string
}

// ListTasksQueryResult returns the matching tasks together with counts over
// the list's FULL task set, unaffected by search or filter.
type ListTasksQueryResult struct {
	List           *common.ListResult   `json:"list"`
	Results        []*common.TaskResult `json:"results"`
	TotalTasks     int64                `json:"total_tasks"`
	CompletedTasks int64                `json:"completed_tasks"`
	PendingTasks   int64                `json:"pending_tasks"`
}
