package tui

// Option configures a Session before its first prompt.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session. Tests use
// this to script answers without a terminal.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithPageSize caps the number of radio options shown at once.
func WithPageSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.pageSize = size
		}
	}
}
