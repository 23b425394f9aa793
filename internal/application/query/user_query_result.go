package query

import "thelist/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
