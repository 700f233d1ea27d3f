package handler

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}
