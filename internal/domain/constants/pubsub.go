package constants

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
