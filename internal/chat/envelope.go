package chat

// Envelope is the sole external contract of the pipeline. Every outcome is
// normalized into it before leaving the service, including rejections and
// degraded replies.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Debug   map[string]any `json:"debug,omitempty"`
}
