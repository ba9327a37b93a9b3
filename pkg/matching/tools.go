package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"
	"github.com/TanaySingh02/Farmwise2.0/pkg/embedding"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// ToolName is a closed enumeration. The reasoning loop dispatches over
// these variants only; there is no open registry.
type ToolName string

const (
	ToolLookupByName     ToolName = "lookup-by-name"
	ToolLookupByMinistry ToolName = "lookup-by-ministry"
	ToolLookupByState    ToolName = "lookup-by-state"
	ToolLookupById       ToolName = "lookup-by-id"
	ToolHybridSearch     ToolName = "hybrid-search"
	ToolFarmerProfile    ToolName = "farmer-profile"
)

var ErrUnknownTool = errors.New("unknown tool")

const defaultSearchTopK = 10

// ToolSpec describes one tool to the reasoning engine: what it does
// and the JSON arguments it accepts.
type ToolSpec struct {
	Name        ToolName
	Description string
	Arguments   string
}

func ToolCatalog() []ToolSpec {
	return []ToolSpec{
		{
			Name:        ToolLookupByName,
			Description: "Find schemes whose name contains the given text (case-insensitive).",
			Arguments:   `{"name": "<partial scheme name>"}`,
		},
		{
			Name:        ToolLookupByMinistry,
			Description: "Find schemes run by a ministry whose name contains the given text (case-insensitive).",
			Arguments:   `{"ministry": "<partial ministry name>"}`,
		},
		{
			Name:        ToolLookupByState,
			Description: "Find schemes applicable in a state whose name contains the given text (case-insensitive). Central schemes carry no state.",
			Arguments:   `{"state": "<partial state name>"}`,
		},
		{
			Name:        ToolLookupById,
			Description: "Fetch one scheme by its exact id.",
			Arguments:   `{"scheme_id": "<uuid>"}`,
		},
		{
			Name:        ToolHybridSearch,
			Description: "Semantic similarity search over indexed scheme chunks. Optionally restrict by chunk kind (overview, eligibility, application, features), scheme name, or ministry.",
			Arguments:   `{"query": "<free text>", "chunk_kind": "<optional>", "scheme_name": "<optional>", "ministry": "<optional>", "top_k": <optional, default 10>}`,
		},
		{
			Name:        ToolFarmerProfile,
			Description: "Fetch the full profile of a farmer: demographics, contact, plots, crops, and activity history.",
			Arguments:   `{"farmer_id": "<farmer id>"}`,
		},
	}
}

type LookupByNameInput struct {
	Name string `json:"name" validate:"required"`
}

type LookupByMinistryInput struct {
	Ministry string `json:"ministry" validate:"required"`
}

type LookupByStateInput struct {
	State string `json:"state" validate:"required"`
}

type LookupByIdInput struct {
	SchemeId string `json:"scheme_id" validate:"required,uuid"`
}

type HybridSearchInput struct {
	Query      string `json:"query" validate:"required"`
	ChunkKind  string `json:"chunk_kind" validate:"omitempty,oneof=overview eligibility application features"`
	SchemeName string `json:"scheme_name"`
	Ministry   string `json:"ministry"`
	TopK       int    `json:"top_k" validate:"omitempty,min=1,max=50"`
}

type FarmerProfileInput struct {
	FarmerId string `json:"farmer_id" validate:"required"`
}

// ToolRegistry owns the collaborators every tool needs. All tools are
// read-only.
type ToolRegistry struct {
	factory  unitofwork.RepositoryFactory
	embedder embedding.EmbeddingProvider
	index    vectorindex.Index
	cache    *gocache.Cache
	validate *validator.Validate
}

func NewToolRegistry(
	factory unitofwork.RepositoryFactory,
	embedder embedding.EmbeddingProvider,
	index vectorindex.Index,
) *ToolRegistry {
	return &ToolRegistry{
		factory:  factory,
		embedder: embedder,
		index:    index,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
		validate: validator.New(),
	}
}

// Invoke runs one tool. Malformed arguments fail with a descriptive
// validation error so the reasoning loop can correct itself.
func (r *ToolRegistry) Invoke(ctx context.Context, name ToolName, args json.RawMessage) (interface{}, error) {
	switch name {
	case ToolLookupByName:
		input := LookupByNameInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.lookupByName(ctx, input)
	case ToolLookupByMinistry:
		input := LookupByMinistryInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.lookupByMinistry(ctx, input)
	case ToolLookupByState:
		input := LookupByStateInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.lookupByState(ctx, input)
	case ToolLookupById:
		input := LookupByIdInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.lookupById(ctx, input)
	case ToolHybridSearch:
		input := HybridSearchInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.hybridSearch(ctx, input)
	case ToolFarmerProfile:
		input := FarmerProfileInput{}
		if err := r.parseArgs(name, args, &input); err != nil {
			return nil, err
		}
		return r.farmerProfile(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

func (r *ToolRegistry) parseArgs(name ToolName, args json.RawMessage, target interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, target); err != nil {
		return fmt.Errorf("tool %s: malformed arguments: %w", name, err)
	}
	if err := r.validate.Struct(target); err != nil {
		return fmt.Errorf("tool %s: invalid arguments: %w", name, err)
	}
	return nil
}

func (r *ToolRegistry) lookupByName(ctx context.Context, input LookupByNameInput) ([]dto.SchemeSummary, error) {
	cacheKey := "scheme:name:" + input.Name
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]dto.SchemeSummary), nil
	}

	uow := r.factory.NewUnitOfWork(ctx)
	schemes, err := uow.SchemeRepository().FindByNameLike(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("lookup schemes by name %q: %w", input.Name, err)
	}

	summaries := dto.NewSchemeSummaries(schemes)
	r.cache.Set(cacheKey, summaries, gocache.DefaultExpiration)
	return summaries, nil
}

func (r *ToolRegistry) lookupByMinistry(ctx context.Context, input LookupByMinistryInput) ([]dto.SchemeSummary, error) {
	cacheKey := "scheme:ministry:" + input.Ministry
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]dto.SchemeSummary), nil
	}

	uow := r.factory.NewUnitOfWork(ctx)
	schemes, err := uow.SchemeRepository().FindByMinistryLike(ctx, input.Ministry)
	if err != nil {
		return nil, fmt.Errorf("lookup schemes by ministry %q: %w", input.Ministry, err)
	}

	summaries := dto.NewSchemeSummaries(schemes)
	r.cache.Set(cacheKey, summaries, gocache.DefaultExpiration)
	return summaries, nil
}

func (r *ToolRegistry) lookupByState(ctx context.Context, input LookupByStateInput) ([]dto.SchemeSummary, error) {
	cacheKey := "scheme:state:" + input.State
	if cached, found := r.cache.Get(cacheKey); found {
		return cached.([]dto.SchemeSummary), nil
	}

	uow := r.factory.NewUnitOfWork(ctx)
	schemes, err := uow.SchemeRepository().FindByStateLike(ctx, input.State)
	if err != nil {
		return nil, fmt.Errorf("lookup schemes by state %q: %w", input.State, err)
	}

	summaries := dto.NewSchemeSummaries(schemes)
	r.cache.Set(cacheKey, summaries, gocache.DefaultExpiration)
	return summaries, nil
}

func (r *ToolRegistry) lookupById(ctx context.Context, input LookupByIdInput) (*dto.SchemeSummary, error) {
	schemeId, err := uuid.Parse(input.SchemeId)
	if err != nil {
		return nil, fmt.Errorf("tool %s: invalid scheme id %q: %w", ToolLookupById, input.SchemeId, err)
	}

	uow := r.factory.NewUnitOfWork(ctx)
	scheme, err := uow.SchemeRepository().FindById(ctx, schemeId)
	if err != nil {
		return nil, fmt.Errorf("lookup scheme %s: %w", schemeId, err)
	}
	if scheme == nil {
		return nil, nil
	}

	summary := dto.NewSchemeSummary(scheme)
	return &summary, nil
}

func (r *ToolRegistry) hybridSearch(ctx context.Context, input HybridSearchInput) ([]dto.SchemeSearchResult, error) {
	topK := input.TopK
	if topK == 0 {
		topK = defaultSearchTopK
	}

	vector, err := r.embedder.Generate(ctx, input.Query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}

	var filter *vectorindex.Filter
	if input.ChunkKind != "" || input.SchemeName != "" || input.Ministry != "" {
		filter = &vectorindex.Filter{
			SchemeName: input.SchemeName,
			Ministry:   input.Ministry,
			ChunkKind:  input.ChunkKind,
		}
	}

	hits, err := r.index.Search(ctx, vector, topK, filter)
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

func (r *ToolRegistry) farmerProfile(ctx context.Context, input FarmerProfileInput) (*dto.FarmerProfileResponse, error) {
	uow := r.factory.NewUnitOfWork(ctx)
	aggregate, err := BuildFarmerAggregate(ctx, uow, input.FarmerId)
	if err != nil {
		return nil, err
	}
	if aggregate.Empty() {
		return nil, fmt.Errorf("farmer %s not found", input.FarmerId)
	}

	profile := dto.NewFarmerProfileResponse(aggregate)
	return &profile, nil
}
