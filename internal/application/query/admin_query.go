package query

import "thelist/internal/application/common"

// AdminListOverviewRow mirrors the columns of the list admin screen: owner,
// completion flag and progress per list.
type AdminListOverviewRow struct {
	List          *common.ListResult `json:"list"`
	OwnerUsername string             `json:"owner_username"`
}

type AdminListOverviewResult struct {
	Results []*AdminListOverviewRow `json:"results"`
}

type AdminTaskOverviewRow struct {
	Task          *common.TaskResult `json:"task"`
	ListTitle     string             `json:"list_title"`
	OwnerUsername string             `json:"owner_username"`
}

type AdminTaskOverviewResult struct {
	Results []*AdminTaskOverviewRow `json:"results"`
}
