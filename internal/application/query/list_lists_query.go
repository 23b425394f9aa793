package query

import "thelist/internal/application/common"

type ListListsQuery struct {
	Search   string
	Filter   string
	Sort     string
	Page     int
	PageSize int
}

// ListListsQueryResult is one page of lists. TotalLists and CompletedLists
// are counted over the owner's full set, not the filtered page.
type ListListsQueryResult struct {
	Results        []*common.ListResult `json:"results"`
	Page           int                  `json:"page"`
	PageSize       int                  `json:"page_size"`
	TotalPages     int                  `json:"total_pages"`
	FilteredCount  int64                `json:"filtered_count"`
	TotalLists     int64                `json:"total_lists"`
	CompletedLists int64                `json:"completed_lists"`
}
