package dto

// NoticeItem is a toast notification raised by the checkout session
type NoticeItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // info | success | destructive
	CreatedAt   string `json:"created_at"`
}

// NoticesResponse lists the notices drained from a session
type NoticesResponse struct {
	Notices []NoticeItem `json:"notices"`
}
