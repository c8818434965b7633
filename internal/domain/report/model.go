package report

// Usage mirrors the backend's usage report. All numbers are computed
// backend-side; the console only renders them.
type Usage struct {
	Period          string  `json:"period"` // e.g. "2026-08" or "last_7_days"
	ActiveUsers     int     `json:"active_users"`
	NewUsers        int     `json:"new_users"`
	PausedUsers     int     `json:"paused_users"`
	ChurnedUsers    int     `json:"churned_users"`
	SessionsStarted int     `json:"sessions_started"`
	MessagesIn      int     `json:"messages_in"`
	MessagesOut     int     `json:"messages_out"`
	CheckIns        int     `json:"check_ins"`
	OTPAttempts     int     `json:"otp_attempts"`
	OTPSuccessRate  float64 `json:"otp_success_rate"` // 0..1
}

// OTPSuccessPercent returns the success rate as a display percentage.
func (u *Usage) OTPSuccessPercent() float64 {
	return u.OTPSuccessRate * 100
}
