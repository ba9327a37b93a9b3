package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"
	"github.com/TanaySingh02/Farmwise2.0/pkg/catalog"
	"github.com/TanaySingh02/Farmwise2.0/pkg/embedding"
	"github.com/TanaySingh02/Farmwise2.0/pkg/events"
	pktNats "github.com/TanaySingh02/Farmwise2.0/pkg/nats"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// schemeIdNamespace makes scheme ids a pure function of the scheme
// name, so re-importing a catalog updates rows instead of duplicating
// them.
var schemeIdNamespace = uuid.MustParse("9b1fc4de-61d0-4b35-9e41-7a8c5d20f6b4")

func SchemeID(schemeName string) uuid.UUID {
	return uuid.NewSHA1(schemeIdNamespace, []byte(schemeName))
}

type ICatalogService interface {
	ImportSchemes(ctx context.Context, imports []*dto.SchemeImport) (*dto.ImportSchemesResponse, error)
	ReindexAll(ctx context.Context) (*dto.ReindexResponse, error)
	IndexScheme(ctx context.Context, schemeId uuid.UUID) error
	SearchSchemes(ctx context.Context, req *dto.SchemeSearchRequest) ([]dto.SchemeSearchResult, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	indexer          *catalog.Indexer
	embedder         embedding.EmbeddingProvider
	index            vectorindex.Index
	eventPublisher   *pktNats.Publisher
	validate         *validator.Validate
	log              logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	indexer *catalog.Indexer,
	embedder embedding.EmbeddingProvider,
	index vectorindex.Index,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		indexer:          indexer,
		embedder:         embedder,
		index:            index,
		eventPublisher:   eventPublisher,
		validate:         validator.New(),
		log:              log,
	}
}

// ImportSchemes upserts catalog entries and queues each accepted scheme
// for indexing. Entries that fail validation are counted and skipped,
// never silently defaulted.
func (c *catalogService) ImportSchemes(ctx context.Context, imports []*dto.SchemeImport) (*dto.ImportSchemesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	resp := &dto.ImportSchemesResponse{}

	for _, imp := range imports {
		scheme := c.toEntity(imp)
		if err := catalog.ValidateScheme(scheme); err != nil {
			c.log.Warn("catalog_service", "rejected scheme", map[string]interface{}{
				"scheme_name": imp.SchemeName,
				"error":       err.Error(),
			})
			resp.Rejected++
			continue
		}

		if err := uow.SchemeRepository().Upsert(ctx, scheme); err != nil {
			return nil, fmt.Errorf("upsert scheme %q: %w", scheme.SchemeName, err)
		}

		if err := c.queueIndexing(ctx, scheme.Id); err != nil {
			return nil, err
		}
		resp.Imported++
	}

	return resp, nil
}

// ReindexAll queues every stored scheme for a fresh chunk-and-embed
// pass. Indexing itself happens on the consumer.
func (c *catalogService) ReindexAll(ctx context.Context) (*dto.ReindexResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	schemes, err := uow.SchemeRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}

	resp := &dto.ReindexResponse{}
	for _, scheme := range schemes {
		if err := c.queueIndexing(ctx, scheme.Id); err != nil {
			return nil, err
		}
		resp.Queued++
	}
	return resp, nil
}

// IndexScheme chunks one scheme and upserts the embedded chunks into
// the vector index. The whole batch fails together.
func (c *catalogService) IndexScheme(ctx context.Context, schemeId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	scheme, err := uow.SchemeRepository().FindById(ctx, schemeId)
	if err != nil {
		return fmt.Errorf("find scheme %s: %w", schemeId, err)
	}
	if scheme == nil {
		return fmt.Errorf("scheme %s not found", schemeId)
	}

	chunks, err := catalog.ChunkScheme(scheme)
	if err != nil {
		return err
	}

	if err := c.indexer.Index(ctx, chunks); err != nil {
		return fmt.Errorf("index scheme %q: %w", scheme.SchemeName, err)
	}

	c.log.Info("catalog_service", "scheme indexed", map[string]interface{}{
		"scheme_name": scheme.SchemeName,
		"chunks":      len(chunks),
	})

	if c.eventPublisher != nil {
		evt := events.NewCatalogIndexed(scheme.SchemeName, len(chunks))
		// Indexing already succeeded, the event is auxiliary.
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.log.Warn("catalog_service", "failed to publish CATALOG_INDEXED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (c *catalogService) SearchSchemes(ctx context.Context, req *dto.SchemeSearchRequest) ([]dto.SchemeSearchResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, err
	}

	topK := req.TopK
	if topK == 0 {
		topK = 10
	}

	vector, err := c.embedder.Generate(ctx, req.Query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}

	var filter *vectorindex.Filter
	if req.ChunkKind != "" {
		filter = &vectorindex.Filter{ChunkKind: req.ChunkKind}
	}

	hits, err := c.index.Search(ctx, vector, topK, filter)
	if err != nil {
		return nil, fmt.Errorf("search scheme index: %w", err)
	}

	results := make([]dto.SchemeSearchResult, len(hits))
	for i, hit := range hits {
		results[i] = dto.SchemeSearchResult{
			Content:       hit.Content,
			Score:         hit.Score,
			SchemeName:    hit.Metadata.SchemeName,
			Ministry:      hit.Metadata.Ministry,
			ChunkKind:     hit.Metadata.ChunkKind,
			LastUpdated:   hit.Metadata.LastUpdated,
			ReferenceLink: hit.Metadata.ReferenceLink,
		}
	}
	return results, nil
}

func (c *catalogService) queueIndexing(ctx context.Context, schemeId uuid.UUID) error {
	msgPayload := dto.PublishIndexSchemeMessage{
		SchemeId: schemeId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return err
	}
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		return fmt.Errorf("queue indexing for scheme %s: %w", schemeId, err)
	}
	return nil
}

func (c *catalogService) toEntity(imp *dto.SchemeImport) *entity.Scheme {
	return &entity.Scheme{
		Id:                  SchemeID(imp.SchemeName),
		SchemeName:          imp.SchemeName,
		Ministry:            imp.Ministry,
		State:               imp.State,
		Objective:           imp.Objective,
		Benefit:             imp.Benefit,
		EligibilityCriteria: imp.Eligibility.Criteria,
		Exclusions:          imp.Exclusions,
		ApplicationProcess:  imp.ApplicationProcess,
		DocumentsRequired:   imp.DocumentsRequired,
		OfficialWebsite:     imp.OfficialWebsite,
		LastUpdated:         imp.LastUpdated,
		Features:            imp.Features,
		Targets:             imp.Targets,
		Components:          imp.Components,
		CreatedAt:           time.Now(),
	}
}
