package app

type PublishFileInput struct {
	Path string
}

// PublishEventInput carries the structured event fields. SpeakingRate and
// Language fall back to the domain defaults when left at their zero values.
type PublishEventInput struct {
	RequestID      string
	SessionID      string
	Prompt         string
	SpeakingRate   float64
	Language       string
	ImageBase64    string
	TraceID        string
	ConversationID string
}
