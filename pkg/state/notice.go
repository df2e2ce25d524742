package state

// NoticeLevel classifies a user-facing message accumulated during a
// render pass.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// String returns the level's client-side class name.
func (l NoticeLevel) String() string {
	switch l {
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is one user-facing message, optionally targeted at the element
// with the given ID.
type Notice struct {
	Level     NoticeLevel
	Text      string
	ElementID string
}

// AddNotice queues a user-facing message for the current render pass.
func (s *State) AddNotice(level NoticeLevel, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Level: level, Text: text})
}

// AddNoticeFor queues a message targeted at a specific element.
func (s *State) AddNoticeFor(level NoticeLevel, text, elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Level: level, Text: text, ElementID: elementID})
}

// Notices returns a copy of the accumulated messages in order.
func (s *State) Notices() []Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.notices) == 0 {
		return nil
	}
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// ClearNotices drops the accumulated messages, typically after they have
// been rendered.
func (s *State) ClearNotices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = nil
}
