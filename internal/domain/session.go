package domain

// Session is the read-only cached copy of what the identity provider
// reports. The application never inspects more than id, email and the
// user metadata bag.
type Session struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// DisplayName returns the full name from the session metadata, falling back
// to the email when none was recorded.
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	if name, ok := s.Metadata["full_name"].(string); ok && name != "" {
		return name
	}
	return s.Email
}
