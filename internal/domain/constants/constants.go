// Package constants collects string identifiers shared across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers selected by pubsub.provider.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Event types published after a committed write.
const (
	EventUserRegistered            = "user.registered"
	EventOrderPlaced               = "order.placed"
	EventOrderStatusChanged        = "order.status_changed"
	EventSellerApplicationReviewed = "seller_application.reviewed"
)
