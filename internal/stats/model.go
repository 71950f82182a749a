package stats

type LeaderboardEntry struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}

type RankingEntry struct {
	Username      string  `json:"username"`
	DisplayName   string  `json:"displayName"`
	TotalGames    int     `json:"totalGames"`
	Wins          int     `json:"wins"`
	WinPercentage float64 `json:"winPercentage"`
}
