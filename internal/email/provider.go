package email

// Provider sends transactional email. Delivery failures are the
// caller's problem to log; nothing in the auth flow depends on them.
type Provider interface {
	Send(to []string, subject, htmlBody string) error
	SendWelcome(to, displayName string) error
}

// Noop discards every message. Used in tests and when SMTP is not
// configured.
type Noop struct{}

func (Noop) Send(to []string, subject, htmlBody string) error { return nil }
func (Noop) SendWelcome(to, displayName string) error         { return nil }
