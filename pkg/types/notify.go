package types

// Severity classifies a user-facing notification.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notifier is the sink for user-facing messages. Recoverable errors are
// reported here at the point of detection and never propagated past the
// triggering action.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(string, Severity) {}
