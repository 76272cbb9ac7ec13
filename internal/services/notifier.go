package services

import "log"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Notifier is how the sync services surface user-facing messages. The
// presentation layer supplies an implementation (snackbar, status line, ...);
// core logic never prints directly.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(severity Severity, message string) {
	log.Printf("[%s] %s", severity, message)
}
