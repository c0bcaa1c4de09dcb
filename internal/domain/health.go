package domain

// APIHealth is a point-in-time readiness report from the recommender.
type APIHealth struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	TotalJobs   int    `json:"total_jobs"`
}
