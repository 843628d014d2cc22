package health

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// PingResponse for connectivity checks
type PingResponse struct {
	Message string `json:"message"`
}
