package utils

// Mailer delivers outgoing platform mail. Actual delivery is an external
// concern; the default implementation records the message through the logger
// so flows stay testable without an SMTP account.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer writes outgoing mail to the application log.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	GetLogger().Sugar().Infof("Sending mail to %s [%s]: %s", to, subject, body)
	return nil
}
