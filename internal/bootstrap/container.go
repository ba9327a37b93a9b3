package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/TanaySingh02/Farmwise2.0/internal/config"
	"github.com/TanaySingh02/Farmwise2.0/internal/controller"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"
	"github.com/TanaySingh02/Farmwise2.0/internal/service"
	"github.com/TanaySingh02/Farmwise2.0/pkg/catalog"
	"github.com/TanaySingh02/Farmwise2.0/pkg/embedding"
	llmfactory "github.com/TanaySingh02/Farmwise2.0/pkg/llm/factory"
	"github.com/TanaySingh02/Farmwise2.0/pkg/matching"
	pktNats "github.com/TanaySingh02/Farmwise2.0/pkg/nats"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
	memoryindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
	pgvectorindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/pgvector"
	qdrantindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/qdrant"
)

type Container struct {
	// Controllers
	MatchingController controller.IMatchingController
	SchemeController   controller.ISchemeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for the feed and match CLIs
	CatalogService  service.ICatalogService
	MatchingService service.IMatchingService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbedModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := llmfactory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Index Backend
	var index vectorindex.Index
	switch cfg.Index.Backend {
	case "qdrant":
		qdrantIdx, err := qdrantindex.NewQdrantIndex(cfg.Index.QdrantAddr, cfg.Index.Collection)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to Qdrant: %v", err)
		}
		if err := qdrantIdx.EnsureCollection(context.Background(), cfg.Index.Dimensions); err != nil {
			log.Printf("[WARN] Failed to ensure Qdrant collection: %v", err)
		}
		index = qdrantIdx
		log.Printf("[INFO] Using Vector Index: QDRANT (%s)", cfg.Index.QdrantAddr)
	case "memory":
		index = memoryindex.NewMemoryIndex()
		log.Printf("[INFO] Using Vector Index: MEMORY")
	default:
		index = pgvectorindex.NewPgVectorIndex(db)
		log.Printf("[INFO] Using Vector Index: PGVECTOR")
	}

	// 5. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 6. Services
	indexer := catalog.NewIndexer(embeddingProvider, index)
	publisherService := service.NewPublisherService(cfg.Index.IndexTopicName, pubSub)

	catalogService := service.NewCatalogService(
		uowFactory,
		publisherService,
		indexer,
		embeddingProvider,
		index,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Index.IndexTopicName,
		catalogService,
		sysLogger,
	)

	toolRegistry := matching.NewToolRegistry(uowFactory, embeddingProvider, index)
	reasoner := matching.NewReasoner(llmProvider, toolRegistry, cfg.Ai.MaxReasoningSteps, sysLogger)

	matchingService := service.NewMatchingService(
		uowFactory,
		reasoner,
		natsPub,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		MatchingController: controller.NewMatchingController(matchingService),
		SchemeController:   controller.NewSchemeController(catalogService),

		ConsumerService: consumerService,

		CatalogService:  catalogService,
		MatchingService: matchingService,
	}
}
