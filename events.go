package authservice

import "time"

// TopicAccountCreated is announced once per successful registration.
const TopicAccountCreated = "account.created"

// EventSink publishes lifecycle notifications to a named topic.
// At-least-once, fire-and-forget from the caller's side.
type EventSink interface {
	Publish(topic string, message any) error
}

// AccountCreatedMessage is the payload on the account.created topic.
// Consumers must be idempotent on AccountID.
type AccountCreatedMessage struct {
	AccountID ID        `json:"accountId"`
	CreatedAt time.Time `json:"createdAt"`
}
