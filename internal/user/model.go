package user

type User struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Username         string  `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName      string  `gorm:"not null" json:"displayName"`
	Email            string  `json:"email,omitempty"`
	TotalGames       int     `json:"totalGames"`
	Wins             int     `json:"wins"`
	WinPercentage    float64 `json:"winPercentage"`
	LongestWinStreak int     `json:"longestWinStreak"`
}

type UserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type UserResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}
