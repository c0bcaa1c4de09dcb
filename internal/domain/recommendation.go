package domain

// DefaultTopN is the number of recommendations requested when the caller
// does not say otherwise.
const DefaultTopN = 10

type RecommendationRequest struct {
	Skills []string `json:"skills"`
	TopN   int      `json:"top_n"`
}

// JobRecommendation is a single job returned by the recommender. It is
// never modified locally.
type JobRecommendation struct {
	JobID           string  `json:"job_id,omitempty"`
	JobRole         string  `json:"job_role"`
	Company         string  `json:"company"`
	Category        string  `json:"category"`
	RequiredSkills  string  `json:"required_skills"`
	JobDescription  string  `json:"job_description"`
	SimilarityScore float64 `json:"similarity_score"`
}

type RecommendationResponse struct {
	Recommendations *[]JobRecommendation `json:"recommendations"`
}
