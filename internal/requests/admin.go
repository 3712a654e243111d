package requests

type SoftDeletePostRequest struct {
	Reason string `json:"reason" form:"reason"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" form:"status"`
	Reason string `json:"reason" form:"reason"`
}
