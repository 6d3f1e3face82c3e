package dto

// AdminStatsResponse represents the per-qualification statistics
// @Description User counts and average scores per qualification
type AdminStatsResponse struct {
	UserCounts    map[string]int     `json:"user_counts"`
	AverageScores map[string]float64 `json:"average_scores"`
}

// UserStatsResponse summarises the caller's attempts.
type UserStatsResponse struct {
	User              UserProfileResponse `json:"user"`
	TotalQuizzesTaken int                 `json:"total_quizzes_taken"`
	AverageScore      float64             `json:"average_score"`
	SubmittedCount    int                 `json:"submitted_count"`
}
