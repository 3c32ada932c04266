package dto

type SendMockNotificationRequest struct {
	MatchID   string `json:"match_id,omitempty"`
	ReportID  string `json:"report_id,omitempty"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}
