// README: Common value objects shared across modules.
package types

// ID identifies a trip or other stored entity.
type ID string

// DataSource tags where a stage's data came from.
type DataSource string

const (
	SourceLiveProvider DataSource = "live-provider"
	SourceSynthesized  DataSource = "synthesized"
	SourceFallback     DataSource = "fallback"
)
