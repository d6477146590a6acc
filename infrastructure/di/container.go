package di

import (
	"context"

	"paperplay-backend/application/commands"
	"paperplay-backend/application/commands/bus"
	"paperplay-backend/application/ports"
	querybus "paperplay-backend/application/queries/bus"
	"paperplay-backend/infrastructure/config"
	"paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	SessionRepo  ports.SessionRepository
	GameRepo     ports.GameRepository
	ProgressRepo ports.ProgressRepository
	EventBus     ports.EventPublisher

	ProcessPaper  *commands.ProcessPaperHandler
	CreateSession *commands.CreateSessionHandler
	EndSession    *commands.EndSessionHandler
	CommandBus    *bus.CommandBus
	QueryBus      *querybus.QueryBus

	Cache        *InMemoryCache
	Metrics      *observability.Collector
	ErrorHandler *errors.ErrorHandler
	RateLimiters RateLimiters
}

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dynamoClient := ProvideDynamoDBClient(awsCfg)
	eventBridgeClient := ProvideEventBridgeClient(awsCfg)

	dcfg, err := ProvideDomainConfig()
	if err != nil {
		return nil, err
	}

	sessionRepo := ProvideSessionRepository()
	gameRepo := ProvideGameRepository(cfg, dynamoClient, logger)
	progressRepo := ProvideProgressRepository(cfg, dynamoClient, logger)
	eventBus := ProvideEventPublisher(cfg, eventBridgeClient, logger)

	annotator := ProvideAnnotator(cfg, logger)
	summarizer := ProvideSummarizer(cfg, logger)
	extractor := ProvideConceptExtractor(dcfg)
	builder := ProvideRelationshipBuilder()
	synthesizer := ProvideGameSynthesizer(dcfg)
	rules := ProvideAchievementRules(dcfg)

	tracer := ProvideTracer(cfg)
	metrics := ProvideMetrics()
	processPaper := ProvideProcessPaperHandler(annotator, summarizer, extractor, builder, synthesizer, gameRepo, eventBus, dcfg, tracer, metrics, logger)
	createSession := ProvideCreateSessionHandler(sessionRepo, gameRepo, eventBus, logger)
	endSession := ProvideEndSessionHandler(sessionRepo, progressRepo, rules, eventBus, logger)

	commandBus, err := ProvideCommandBus(sessionRepo, logger)
	if err != nil {
		return nil, err
	}

	cache := NewInMemoryCache()
	queryBus, err := ProvideQueryBus(cfg, sessionRepo, gameRepo, progressRepo, cache, logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:        cfg,
		Logger:        logger,
		SessionRepo:   sessionRepo,
		GameRepo:      gameRepo,
		ProgressRepo:  progressRepo,
		EventBus:      eventBus,
		ProcessPaper:  processPaper,
		CreateSession: createSession,
		EndSession:    endSession,
		CommandBus:    commandBus,
		QueryBus:      queryBus,
		Cache:         cache,
		Metrics:       metrics,
		ErrorHandler:  ProvideErrorHandler(cfg, logger),
		RateLimiters:  ProvideRateLimiters(cfg, dynamoClient),
	}, nil
}
