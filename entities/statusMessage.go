package entities

// StatusSeverity is the kind of a status message. Its value doubles as the
// CSS class of the rendered message area.
type StatusSeverity string

const (
	// StatusSuccess marks messages for completed operations
	StatusSuccess StatusSeverity = "success"
	// StatusError marks messages for failed operations
	StatusError StatusSeverity = "error"
)

// StatusMessage is the single transient message shared by the signup and
// unregister flows. Only one exists at a time, a new message replaces any
// prior one.
type StatusMessage struct {
	Text     string
	Severity StatusSeverity
}
