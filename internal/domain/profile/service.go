package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/riskfacts/riskfacts/internal/derive"
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// Service runs the full pipeline: raw answer map in, standardized profile,
// derived facts out. It holds no mutable state and is safe for concurrent use.
type Service struct {
	std    *standardize.Standardizer
	engine *derive.Engine
	rs     *ruleset.Ruleset
	log    zerolog.Logger
}

func NewService(rs *ruleset.Ruleset, log zerolog.Logger) *Service {
	return &Service{
		std:    standardize.New(log),
		engine: derive.NewEngine(rs, log),
		rs:     rs,
		log:    log,
	}
}

// DeriveProfile standardizes the raw answers and evaluates every rule group.
// Bad individual answers never fail the request; only a missing payload does.
func (s *Service) DeriveProfile(ctx context.Context, raw map[string]any) (*ProfileResult, error) {
	if raw == nil {
		return nil, fmt.Errorf("answers payload is required")
	}
	id := uuid.New()
	profile := s.std.Standardize(raw)
	facts := s.engine.CalculateAll(profile)

	s.log.Info().
		Str("profile_id", id.String()).
		Int("answer_count", len(raw)).
		Str("ruleset_version", s.rs.Version).
		Msg("profile: derivation complete")

	return &ProfileResult{
		ProfileID: id,
		Meta:      ResultMeta{Version: s.rs.Version},
		Facts:     facts.Flatten(),
	}, nil
}

// Ruleset exposes the active threshold bundle for inspection.
func (s *Service) Ruleset() *ruleset.Ruleset {
	return s.rs
}
