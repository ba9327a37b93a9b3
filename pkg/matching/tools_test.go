package matching

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/memory"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
	memoryindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
)

type fixedEmbedder struct {
	vector []float32
}

func (f fixedEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return f.vector, nil
}

func dripScheme() *entity.Scheme {
	return &entity.Scheme{
		Id:                  uuid.MustParse("2dbd4f4e-9a45-4a9f-ae31-0de55465b0a1"),
		SchemeName:          "Micro Irrigation Subsidy",
		Ministry:            "Ministry of Agriculture and Farmers Welfare",
		State:               "Maharashtra",
		Objective:           "Promote drip irrigation adoption",
		Benefit:             "55% subsidy on drip systems",
		EligibilityCriteria: []string{"Farmers with up to 5 ha of land"},
	}
}

func newTestRegistry(t *testing.T) (*ToolRegistry, *memory.Store, *memoryindex.MemoryIndex) {
	t.Helper()
	store := memory.NewStore()
	index := memoryindex.NewMemoryIndex()
	registry := NewToolRegistry(memory.NewFactory(store), fixedEmbedder{vector: []float32{1, 0}}, index)
	return registry, store, index
}

func TestLookupByNameSubstring(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	store.AddScheme(dripScheme())

	result, err := registry.Invoke(context.Background(), ToolLookupByName, json.RawMessage(`{"name": "irrigation"}`))
	require.NoError(t, err)

	summaries := result.([]dto.SchemeSummary)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Micro Irrigation Subsidy", summaries[0].SchemeName)
}

func TestLookupByMinistryCaseInsensitive(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	store.AddScheme(dripScheme())

	result, err := registry.Invoke(context.Background(), ToolLookupByMinistry, json.RawMessage(`{"ministry": "AGRICULTURE"}`))
	require.NoError(t, err)
	assert.Len(t, result.([]dto.SchemeSummary), 1)
}

func TestLookupByState(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	store.AddScheme(dripScheme())

	result, err := registry.Invoke(context.Background(), ToolLookupByState, json.RawMessage(`{"state": "maha"}`))
	require.NoError(t, err)
	assert.Len(t, result.([]dto.SchemeSummary), 1)

	result, err = registry.Invoke(context.Background(), ToolLookupByState, json.RawMessage(`{"state": "Kerala"}`))
	require.NoError(t, err)
	assert.Empty(t, result.([]dto.SchemeSummary))
}

func TestLookupByIdExactMatch(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	scheme := dripScheme()
	store.AddScheme(scheme)

	result, err := registry.Invoke(context.Background(), ToolLookupById, json.RawMessage(`{"scheme_id": "`+scheme.Id.String()+`"}`))
	require.NoError(t, err)

	summary := result.(*dto.SchemeSummary)
	require.NotNil(t, summary)
	assert.Equal(t, scheme.Id, summary.Id)

	result, err = registry.Invoke(context.Background(), ToolLookupById, json.RawMessage(`{"scheme_id": "`+uuid.NewString()+`"}`))
	require.NoError(t, err)
	assert.Nil(t, result.(*dto.SchemeSummary))
}

func TestLookupByIdRejectsMalformedId(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Invoke(context.Background(), ToolLookupById, json.RawMessage(`{"scheme_id": "not-a-uuid"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestHybridSearchWithFilter(t *testing.T) {
	registry, _, index := newTestRegistry(t)
	require.NoError(t, index.Upsert(context.Background(), []vectorindex.Document{
		{
			Id:        "drip-eligibility",
			Content:   "Eligibility Criteria:\n- Farmers with up to 5 ha",
			Embedding: []float32{1, 0},
			Metadata:  vectorindex.Metadata{SchemeName: "Micro Irrigation Subsidy", ChunkKind: "eligibility"},
		},
		{
			Id:        "drip-overview",
			Content:   "Objective: Promote drip irrigation adoption",
			Embedding: []float32{1, 0},
			Metadata:  vectorindex.Metadata{SchemeName: "Micro Irrigation Subsidy", ChunkKind: "overview"},
		},
	}))

	result, err := registry.Invoke(context.Background(), ToolHybridSearch, json.RawMessage(`{"query": "drip irrigation subsidy", "chunk_kind": "eligibility", "top_k": 5}`))
	require.NoError(t, err)

	hits := result.([]dto.SchemeSearchResult)
	require.Len(t, hits, 1)
	assert.Equal(t, "eligibility", hits[0].ChunkKind)
}

func TestHybridSearchRejectsBadChunkKind(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Invoke(context.Background(), ToolHybridSearch, json.RawMessage(`{"query": "anything", "chunk_kind": "nonsense"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestFarmerProfileTool(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	store.AddFarmer(&entity.Farmer{Id: "user_f1", Name: "Asha", State: "Maharashtra"})
	store.AddPlot(&entity.FarmerPlot{Id: uuid.New(), FarmerId: "user_f1", AreaHectares: 2.0, IrrigationType: "drip"})
	store.AddLog(&entity.ActivityLog{Id: uuid.New(), FarmerId: "user_f1", Activity: "sowing", CreatedAt: time.Now()})

	result, err := registry.Invoke(context.Background(), ToolFarmerProfile, json.RawMessage(`{"farmer_id": "user_f1"}`))
	require.NoError(t, err)

	profile := result.(*dto.FarmerProfileResponse)
	assert.Equal(t, "Asha", profile.Name)
	require.Len(t, profile.Plots, 1)
	assert.Equal(t, "drip", profile.Plots[0].IrrigationType)
	assert.Len(t, profile.ActivityLogs, 1)
}

func TestFarmerProfileUnknownFarmer(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Invoke(context.Background(), ToolFarmerProfile, json.RawMessage(`{"farmer_id": "user_missing"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInvokeUnknownTool(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Invoke(context.Background(), ToolName("drop-tables"), nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestInvokeMissingRequiredArgument(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Invoke(context.Background(), ToolLookupByName, json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}
