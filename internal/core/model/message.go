// internal/core/model/message.go
package model

// RequestLetter is a new-inference request addressed to a model's receiving
// channel. PublishingChannel is bus addressing, not part of the payload.
type RequestLetter struct {
	Content           InferenceCreation `json:"content"`
	PublishingChannel string            `json:"-"`
}
