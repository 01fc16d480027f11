package profile

import "github.com/google/uuid"

// ProfileResult is the wire form of one derivation: an opaque request id, the
// ruleset version that produced the facts, and the flat dotted-key facts map.
type ProfileResult struct {
	ProfileID uuid.UUID      `json:"profile_id"`
	Meta      ResultMeta     `json:"meta"`
	Facts     map[string]any `json:"facts"`
}

type ResultMeta struct {
	Version string `json:"version"`
}
