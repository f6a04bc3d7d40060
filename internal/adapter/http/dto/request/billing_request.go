package request

type ChangePlanRequest struct {
	PlanID string `json:"plano_id" binding:"required"`
}
