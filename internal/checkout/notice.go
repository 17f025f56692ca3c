package checkout

import "time"

// Severity mirrors the toast variants of the checkout page
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notice is a transient notification for the client to display
type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

// noticeFeed keeps the most recent notices up to a fixed size
type noticeFeed struct {
	size    int
	notices []Notice
}

func newNoticeFeed(size int) *noticeFeed {
	if size <= 0 {
		size = 1
	}
	return &noticeFeed{size: size}
}

func (f *noticeFeed) push(n Notice) {
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.size; over > 0 {
		f.notices = append([]Notice(nil), f.notices[over:]...)
	}
}

func (f *noticeFeed) drain() []Notice {
	out := f.notices
	f.notices = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}
