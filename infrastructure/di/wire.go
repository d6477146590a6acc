//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"paperplay-backend/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideDomainConfig,
	ProvideSessionRepository,
	ProvideGameRepository,
	ProvideProgressRepository,
	ProvideEventPublisher,
	ProvideAnnotator,
	ProvideSummarizer,
	ProvideConceptExtractor,
	ProvideRelationshipBuilder,
	ProvideGameSynthesizer,
	ProvideAchievementRules,
	ProvideProcessPaperHandler,
	ProvideCreateSessionHandler,
	ProvideEndSessionHandler,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideMetrics,
	ProvideTracer,
	ProvideErrorHandler,
	ProvideRateLimiters,
	NewInMemoryCache,
	wire.Struct(new(Container), "*"),
)

// WireContainer builds the container through wire's generated code.
// The hand-wired InitializeContainer in container.go is the default
// path; this injector exists for regenerating it with wire.
func WireContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
