// internal/core/model/model.go
package model

// Model is the reference record for one deployed model worker. The topics are
// named from this service's point of view: PublishingTopic is where new work
// for the model is published, SubscribingTopic is where its results come back.
type Model struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	SubscribingTopic string `json:"subscribing_topic"`
	PublishingTopic  string `json:"publishing_topic"`
}

// ReceivingChannel is the channel new inference requests for this model are
// published to.
func (m Model) ReceivingChannel() string {
	return m.PublishingTopic
}
