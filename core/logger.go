package core

// Logger is the application logger. args may hold errors, maps of extra
// data and a RequestMeta, e.g. logger.Error("layout failed", err, meta).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// RequestMeta identifies the request a log entry belongs to.
type RequestMeta struct {
	RequestID    string
	DocumentType string
	Board        string
}

// Fields returns m as custom data for error reporting.
func (m RequestMeta) Fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if m.RequestID != "" {
		fields["request_id"] = m.RequestID
	}
	if m.DocumentType != "" {
		fields["document_type"] = m.DocumentType
	}
	if m.Board != "" {
		fields["board"] = m.Board
	}
	return fields
}
