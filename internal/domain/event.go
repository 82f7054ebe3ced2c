package domain

import (
	"strings"
)

// Event is the structured publish request built from CLI input. Optional
// fields stay empty and are omitted from the encoded payload.
type Event struct {
	requestID      RequestID
	sessionID      SessionID
	prompt         string
	speakingRate   SpeakingRate
	language       Language
	imageBase64    string
	traceID        string
	conversationID string
}

func NewEvent(requestID RequestID, sessionID SessionID, prompt string) (*Event, error) {
	if requestID.IsZero() {
		return nil, ErrEmptyRequestID
	}

	if sessionID.IsZero() {
		return nil, ErrEmptySessionID
	}

	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	return &Event{
		requestID:    requestID,
		sessionID:    sessionID,
		prompt:       prompt,
		speakingRate: DefaultSpeakingRate(),
		language:     DefaultLanguage(),
	}, nil
}

func (e *Event) SetSpeakingRate(rate SpeakingRate) {
	if !rate.IsZero() {
		e.speakingRate = rate
	}
}

func (e *Event) SetLanguage(language Language) {
	if !language.IsZero() {
		e.language = language
	}
}

func (e *Event) AttachImage(imageBase64 string) {
	e.imageBase64 = imageBase64
}

func (e *Event) SetTraceID(traceID string) {
	e.traceID = traceID
}

func (e *Event) SetConversationID(conversationID string) {
	e.conversationID = conversationID
}

// Payload encodes the event as the JSON document the topic receives.
func (e *Event) Payload() (Payload, error) {
	document := map[string]any{
		"request_id":    e.requestID.String(),
		"session_id":    e.sessionID.String(),
		"prompt":        e.prompt,
		"speaking_rate": e.speakingRate.Value(),
		"language":      e.language.Code(),
	}

	if e.imageBase64 != "" {
		document["image_base64"] = e.imageBase64
	}

	if e.traceID != "" {
		document["trace_id"] = e.traceID
	}

	if e.conversationID != "" {
		document["conversation_id"] = e.conversationID
	}

	return newPayload(document)
}

func (e *Event) RequestID() RequestID {
	return e.requestID
}

func (e *Event) SessionID() SessionID {
	return e.sessionID
}

func (e *Event) Prompt() string {
	return e.prompt
}

func (e *Event) SpeakingRate() SpeakingRate {
	return e.speakingRate
}

func (e *Event) Language() Language {
	return e.language
}

func (e *Event) ImageBase64() string {
	return e.imageBase64
}

func (e *Event) TraceID() string {
	return e.traceID
}

func (e *Event) ConversationID() string {
	return e.conversationID
}
