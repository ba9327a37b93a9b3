package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/memory"
	"github.com/TanaySingh02/Farmwise2.0/pkg/catalog"
	memoryindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
)

// keywordEmbedder projects text onto two topic axes so similar texts
// land close together. Enough signal for ranking tests.
type keywordEmbedder struct{}

func (keywordEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	lower := strings.ToLower(text)
	vector := []float32{0.1, 0.1}
	if strings.Contains(lower, "drip") || strings.Contains(lower, "irrigation") {
		vector[0] = 1
	}
	if strings.Contains(lower, "poultry") || strings.Contains(lower, "livestock") {
		vector[1] = 1
	}
	return vector, nil
}

func dripImport() *dto.SchemeImport {
	imp := &dto.SchemeImport{
		SchemeName: "Micro Irrigation Subsidy",
		Ministry:   "Ministry of Agriculture and Farmers Welfare",
		Objective:  "Promote drip irrigation adoption",
		Benefit:    "55% subsidy on drip systems",
	}
	imp.Eligibility.Criteria = []string{"Farmers installing drip irrigation on up to 5 ha"}
	return imp
}

func poultryImport() *dto.SchemeImport {
	imp := &dto.SchemeImport{
		SchemeName: "Poultry Venture Capital Fund",
		Ministry:   "Ministry of Fisheries, Animal Husbandry and Dairying",
		Objective:  "Support poultry farming units",
	}
	imp.Eligibility.Criteria = []string{"Farmers running poultry or livestock units"}
	return imp
}

func newTestCatalogService(t *testing.T) (ICatalogService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	factory := memory.NewFactory(store)
	index := memoryindex.NewMemoryIndex()
	embedder := keywordEmbedder{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := NewPublisherService("INDEX_SCHEME", pubSub)

	svc := NewCatalogService(
		factory,
		publisherService,
		catalog.NewIndexer(embedder, index),
		embedder,
		index,
		nil,
		logger.NopLogger{},
	)
	return svc, store
}

func TestImportSchemesRejectsInvalid(t *testing.T) {
	svc, store := newTestCatalogService(t)

	invalid := dripImport()
	invalid.Eligibility.Criteria = nil

	res, err := svc.ImportSchemes(context.Background(), []*dto.SchemeImport{dripImport(), invalid})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Rejected)

	uow := memory.NewFactory(store).NewUnitOfWork(context.Background())
	count, err := uow.SchemeRepository().Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestImportSchemesStableIds(t *testing.T) {
	svc, store := newTestCatalogService(t)

	_, err := svc.ImportSchemes(context.Background(), []*dto.SchemeImport{dripImport()})
	require.NoError(t, err)
	_, err = svc.ImportSchemes(context.Background(), []*dto.SchemeImport{dripImport()})
	require.NoError(t, err)

	uow := memory.NewFactory(store).NewUnitOfWork(context.Background())
	count, err := uow.SchemeRepository().Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "re-import updates in place")
}

func TestSearchSchemesRanksRelevantChunkFirst(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	ctx := context.Background()

	_, err := svc.ImportSchemes(ctx, []*dto.SchemeImport{dripImport(), poultryImport()})
	require.NoError(t, err)

	require.NoError(t, svc.IndexScheme(ctx, SchemeID("Micro Irrigation Subsidy")))
	require.NoError(t, svc.IndexScheme(ctx, SchemeID("Poultry Venture Capital Fund")))

	results, err := svc.SearchSchemes(ctx, &dto.SchemeSearchRequest{
		Query:     "drip irrigation subsidy",
		ChunkKind: "eligibility",
		TopK:      5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "Micro Irrigation Subsidy", results[0].SchemeName)
	assert.Equal(t, "eligibility", results[0].ChunkKind)
}

func TestIndexSchemeUnknownId(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	err := svc.IndexScheme(context.Background(), SchemeID("No Such Scheme"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchSchemesRequiresQuery(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.SearchSchemes(context.Background(), &dto.SchemeSearchRequest{})
	assert.Error(t, err)
}
