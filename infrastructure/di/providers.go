package di

import (
	"context"

	"paperplay-backend/application/commands"
	"paperplay-backend/application/commands/bus"
	"paperplay-backend/application/ports"
	"paperplay-backend/application/queries"
	querybus "paperplay-backend/application/queries/bus"
	queryhandlers "paperplay-backend/application/queries/handlers"
	domainconfig "paperplay-backend/domain/config"
	"paperplay-backend/domain/services"
	"paperplay-backend/infrastructure/config"
	"paperplay-backend/infrastructure/messaging"
	"paperplay-backend/infrastructure/messaging/eventbridge"
	"paperplay-backend/infrastructure/nlp"
	dynamorepos "paperplay-backend/infrastructure/persistence/dynamodb"
	"paperplay-backend/infrastructure/persistence/memory"
	restmiddleware "paperplay-backend/interfaces/http/rest/middleware"
	"paperplay-backend/pkg/auth"
	"paperplay-backend/pkg/errors"
	"paperplay-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideDomainConfig creates the fixed extraction and generation rules
func ProvideDomainConfig() (*domainconfig.DomainConfig, error) {
	dcfg := domainconfig.DefaultDomainConfig()
	if err := dcfg.Validate(); err != nil {
		return nil, err
	}
	return dcfg, nil
}

// ProvideSessionRepository creates the active-session store. Sessions
// are transient, so they always live in process memory.
func ProvideSessionRepository() ports.SessionRepository {
	return memory.NewSessionRepository()
}

// ProvideGameRepository creates the game store for the configured backend
func ProvideGameRepository(cfg *config.Config, client *awsdynamodb.Client, logger *zap.Logger) ports.GameRepository {
	if cfg.StorageBackend == "dynamodb" {
		return dynamorepos.NewGameRepository(client, cfg.GamesTable, logger)
	}
	return memory.NewGameRepository()
}

// ProvideProgressRepository creates the progress store for the configured backend
func ProvideProgressRepository(cfg *config.Config, client *awsdynamodb.Client, logger *zap.Logger) ports.ProgressRepository {
	if cfg.StorageBackend == "dynamodb" {
		return dynamorepos.NewProgressRepository(client, cfg.ProgressTable, logger)
	}
	return memory.NewProgressRepository()
}

// ProvideEventPublisher creates the event publisher. Development runs
// without AWS, so events go to the log there.
func ProvideEventPublisher(cfg *config.Config, client *awseventbridge.Client, logger *zap.Logger) ports.EventPublisher {
	if cfg.IsProduction() || cfg.StorageBackend == "dynamodb" {
		return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
	}
	return messaging.NewLoggingPublisher(logger)
}

// ProvideAnnotator creates the NLP annotation client
func ProvideAnnotator(cfg *config.Config, logger *zap.Logger) ports.Annotator {
	return nlp.NewHTTPAnnotator(cfg.AnnotatorURL, cfg.NLPTimeout, logger)
}

// ProvideSummarizer creates the summarization client
func ProvideSummarizer(cfg *config.Config, logger *zap.Logger) ports.Summarizer {
	return nlp.NewHTTPSummarizer(cfg.SummarizerURL, cfg.NLPTimeout, logger)
}

// ProvideConceptExtractor creates the trigger-word classifier
func ProvideConceptExtractor(dcfg *domainconfig.DomainConfig) services.ConceptExtractor {
	return services.NewDefaultConceptExtractor(dcfg)
}

// ProvideRelationshipBuilder creates the shared-keyword graph builder
func ProvideRelationshipBuilder() services.RelationshipGraphBuilder {
	return services.NewDefaultRelationshipGraphBuilder()
}

// ProvideGameSynthesizer creates the three-generator synthesizer
func ProvideGameSynthesizer(dcfg *domainconfig.DomainConfig) *services.GameSynthesizer {
	return services.NewGameSynthesizer(dcfg)
}

// ProvideAchievementRules creates the achievement rule engine
func ProvideAchievementRules(dcfg *domainconfig.DomainConfig) services.AchievementRuleEngine {
	return services.NewDefaultAchievementRuleEngine(dcfg)
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("paperplay")
}

// ProvideTracer creates the X-Ray tracer. A nil tracer disables
// subsegment recording in the handlers that accept one.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("paperplay-backend")
}

// RateLimiters groups the request limiters handed to the auth middleware.
// Nil limiters fall back to in-process buckets, which is fine for a single
// API server but not for Lambda, where instances share no memory.
type RateLimiters struct {
	IP   restmiddleware.RequestLimiter
	User restmiddleware.RequestLimiter
}

// ProvideRateLimiters creates DynamoDB-backed limiters when a shared table
// is available, and defers to the middleware defaults otherwise.
func ProvideRateLimiters(cfg *config.Config, client *awsdynamodb.Client) RateLimiters {
	if cfg.StorageBackend == "dynamodb" {
		return RateLimiters{
			IP:   auth.NewDistributedIPRateLimiter(client, cfg.RateLimitTable, 100),
			User: auth.NewDistributedUserRateLimiter(client, cfg.RateLimitTable, 200),
		}
	}
	return RateLimiters{}
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *errors.ErrorHandler {
	return errors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideProcessPaperHandler creates the paper pipeline handler
func ProvideProcessPaperHandler(
	annotator ports.Annotator,
	summarizer ports.Summarizer,
	extractor services.ConceptExtractor,
	builder services.RelationshipGraphBuilder,
	synthesizer *services.GameSynthesizer,
	games ports.GameRepository,
	eventBus ports.EventPublisher,
	dcfg *domainconfig.DomainConfig,
	tracer *observability.Tracer,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commands.ProcessPaperHandler {
	return commands.NewProcessPaperHandler(annotator, summarizer, extractor, builder, synthesizer, games, eventBus, dcfg, tracer, metrics, logger)
}

// ProvideCreateSessionHandler creates the session start handler
func ProvideCreateSessionHandler(
	sessions ports.SessionRepository,
	games ports.GameRepository,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *commands.CreateSessionHandler {
	return commands.NewCreateSessionHandler(sessions, games, eventBus, logger)
}

// ProvideEndSessionHandler creates the session end handler
func ProvideEndSessionHandler(
	sessions ports.SessionRepository,
	progress ports.ProgressRepository,
	rules services.AchievementRuleEngine,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *commands.EndSessionHandler {
	return commands.NewEndSessionHandler(sessions, progress, rules, eventBus, logger)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	sessions ports.SessionRepository,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	commandBus.Use(bus.LoggingMiddleware(logger))

	updateHandler := commands.NewUpdateSessionHandler(sessions, logger)
	if err := commandBus.Register(commands.UpdateSessionCommand{}, updateHandler); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// QueryHandlerAdapter bridges typed query handlers onto the bus
type QueryHandlerAdapter struct {
	handleFunc func(ctx context.Context, query querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handleFunc(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers. Game
// lookups go through the read-through cache since stored bundles never
// change.
func ProvideQueryBus(
	cfg *config.Config,
	sessions ports.SessionRepository,
	games ports.GameRepository,
	progress ports.ProgressRepository,
	cache *InMemoryCache,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	sessionHandler := queryhandlers.NewGetSessionHandler(sessions, logger)
	err := queryBus.Register(queries.GetSessionQuery{}, &QueryHandlerAdapter{
		handleFunc: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			return sessionHandler.Handle(ctx, query.(queries.GetSessionQuery))
		},
	})
	if err != nil {
		return nil, err
	}

	gameHandler := queryhandlers.NewGetGameHandler(games, logger)
	caching := querybus.NewCachingMiddleware(cache, cfg.GameCacheTTL)
	err = queryBus.Register(queries.GetGameQuery{}, caching.Wrap(&QueryHandlerAdapter{
		handleFunc: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			return gameHandler.Handle(ctx, query.(queries.GetGameQuery))
		},
	}))
	if err != nil {
		return nil, err
	}

	progressHandler := queryhandlers.NewGetUserProgressHandler(progress, logger)
	err = queryBus.Register(queries.GetUserProgressQuery{}, &QueryHandlerAdapter{
		handleFunc: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			return progressHandler.Handle(ctx, query.(queries.GetUserProgressQuery))
		},
	})
	if err != nil {
		return nil, err
	}

	return queryBus, nil
}
