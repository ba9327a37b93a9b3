package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/memory"
	"github.com/TanaySingh02/Farmwise2.0/pkg/llm"
	"github.com/TanaySingh02/Farmwise2.0/pkg/matching"
	memoryindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
)

type scriptedLLM struct {
	replies []string
	turn    int
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if s.turn >= len(s.replies) {
		return s.replies[len(s.replies)-1], nil
	}
	reply := s.replies[s.turn]
	s.turn++
	return reply, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
}

type fixedEmbedder struct{}

func (fixedEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return []float32{1, 0}, nil
}

type failingReasoner struct {
	err error
}

func (f failingReasoner) Match(ctx context.Context, aggregate *entity.FarmerAggregate) ([]matching.MatchProposal, error) {
	return nil, f.err
}

type stubReasoner struct {
	proposals []matching.MatchProposal
}

func (s stubReasoner) Match(ctx context.Context, aggregate *entity.FarmerAggregate) ([]matching.MatchProposal, error) {
	return s.proposals, nil
}

func seedFarmer(store *memory.Store, farmerId string) {
	store.AddFarmer(&entity.Farmer{Id: farmerId, Name: "Asha", State: "Maharashtra", TotalLandArea: 2.0})
	store.AddPlot(&entity.FarmerPlot{Id: uuid.New(), FarmerId: farmerId, AreaHectares: 2.0, IrrigationType: "drip"})
	store.AddCrop(&entity.PlotCrop{Id: uuid.New(), FarmerId: farmerId, CropName: "rice", Season: "kharif"})
}

func newServiceWithLLM(store *memory.Store, provider llm.LLMProvider) IMatchingService {
	registry := matching.NewToolRegistry(memory.NewFactory(store), fixedEmbedder{}, memoryindex.NewMemoryIndex())
	reasoner := matching.NewReasoner(provider, registry, 8, logger.NopLogger{})
	return NewMatchingService(memory.NewFactory(store), reasoner, nil, logger.NopLogger{})
}

func TestRunEndToEnd(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f1")

	scheme := &entity.Scheme{
		Id:                  uuid.New(),
		SchemeName:          "Micro Irrigation Subsidy",
		Ministry:            "Ministry of Agriculture and Farmers Welfare",
		Objective:           "Promote drip irrigation adoption",
		EligibilityCriteria: []string{"Farmers with up to 5 ha of land"},
	}
	store.AddScheme(scheme)

	provider := &scriptedLLM{replies: []string{
		`{"action": "tool", "tool": "lookup-by-name", "args": {"name": "irrigation"}}`,
		`{"action": "final", "matches": [{"scheme_id": "` + scheme.Id.String() + `", "scheme_name": "Micro Irrigation Subsidy", "reason": "The farmer runs a 2.0 ha plot with drip irrigation and grows rice in the kharif season, matching the subsidy criteria."}]}`,
	}}

	svc := newServiceWithLLM(store, provider)
	state, err := svc.Run(context.Background(), "user_f1")
	require.NoError(t, err)
	assert.Equal(t, StageDone, state.Stage)
	require.Len(t, state.Matches, 1)
	assert.Equal(t, scheme.Id, state.Matches[0].SchemeId)
	assert.Contains(t, state.Matches[0].Reason, "drip")
	assert.Contains(t, state.Matches[0].Reason, "rice")

	persisted := store.Matches()
	require.Len(t, persisted, 1)
	assert.Equal(t, "user_f1", persisted[0].FarmerId)
	assert.True(t, persisted[0].IsEligible)
}

func TestRunEmptyCatalogCompletesWithNoMatches(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f2")

	provider := &scriptedLLM{replies: []string{
		`{"action": "tool", "tool": "lookup-by-state", "args": {"state": "Maharashtra"}}`,
		`{"action": "final", "matches": []}`,
	}}

	svc := newServiceWithLLM(store, provider)
	state, err := svc.Run(context.Background(), "user_f2")
	require.NoError(t, err)
	assert.Equal(t, StageDone, state.Stage)
	assert.Empty(t, state.Matches)
	assert.Empty(t, store.Matches())
}

func TestRunMissingFarmerId(t *testing.T) {
	store := memory.NewStore()
	svc := NewMatchingService(memory.NewFactory(store), stubReasoner{}, nil, logger.NopLogger{})

	state, err := svc.Run(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, StageFailed, state.Stage)
	require.NotNil(t, state.Err)
	assert.Equal(t, ErrorKindMissingInput, state.Err.Kind)
	assert.Equal(t, StageFetchFarmerData, state.Err.Stage)
}

func TestRunUnknownFarmer(t *testing.T) {
	store := memory.NewStore()
	svc := NewMatchingService(memory.NewFactory(store), stubReasoner{}, nil, logger.NopLogger{})

	state, err := svc.Run(context.Background(), "user_nobody")
	require.Error(t, err)
	assert.Equal(t, StageFailed, state.Stage)
	assert.Equal(t, ErrorKindDataFetchFailed, state.Err.Kind)
}

func TestRunReasonerFailure(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f1")

	svc := NewMatchingService(
		memory.NewFactory(store),
		failingReasoner{err: fmt.Errorf("%w: no final answer after 8 steps", matching.ErrStepLimit)},
		nil,
		logger.NopLogger{},
	)

	state, err := svc.Run(context.Background(), "user_f1")
	require.Error(t, err)
	assert.Equal(t, ErrorKindMatchingFailed, state.Err.Kind)
	assert.Equal(t, StageMatchSchemes, state.Err.Stage)
	assert.Empty(t, store.Matches())
}

func TestRunPersistenceFailureRollsBack(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f1")

	proposals := make([]matching.MatchProposal, 3)
	for i := range proposals {
		proposals[i] = matching.MatchProposal{
			SchemeId:   uuid.NewString(),
			SchemeName: fmt.Sprintf("Scheme %d", i+1),
			Reason:     "fits the farmer's drip irrigation setup",
		}
	}

	writes := 0
	store.InsertMatchErr = func(match *entity.SchemeMatch) error {
		writes++
		if writes == 2 {
			return fmt.Errorf("disk full")
		}
		return nil
	}

	svc := NewMatchingService(memory.NewFactory(store), stubReasoner{proposals: proposals}, nil, logger.NopLogger{})

	state, err := svc.Run(context.Background(), "user_f1")
	require.Error(t, err)
	assert.Equal(t, StageFailed, state.Stage)
	assert.Equal(t, ErrorKindPersistenceFailed, state.Err.Kind)
	assert.Equal(t, StagePersistResults, state.Err.Stage)

	// The write batch is transactional: the first row must not survive.
	assert.Empty(t, store.Matches())
	assert.Equal(t, 2, writes, "third write never attempted")
}

func TestRunAppendsOnRerun(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f1")

	proposal := matching.MatchProposal{
		SchemeId:   uuid.NewString(),
		SchemeName: "Micro Irrigation Subsidy",
		Reason:     "drip irrigation on 2.0 ha",
	}
	svc := NewMatchingService(memory.NewFactory(store), stubReasoner{proposals: []matching.MatchProposal{proposal}}, nil, logger.NopLogger{})

	_, err := svc.Run(context.Background(), "user_f1")
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), "user_f1")
	require.NoError(t, err)

	assert.Len(t, store.Matches(), 2)
}

func TestListMatchesNewestFirst(t *testing.T) {
	store := memory.NewStore()
	seedFarmer(store, "user_f1")

	svc := NewMatchingService(memory.NewFactory(store), stubReasoner{}, nil, logger.NopLogger{})

	uow := memory.NewFactory(store).NewUnitOfWork(context.Background())
	older := &entity.SchemeMatch{FarmerId: "user_f1", SchemeId: uuid.New(), SchemeName: "Old", Reason: "r", IsEligible: true, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.SchemeMatch{FarmerId: "user_f1", SchemeId: uuid.New(), SchemeName: "New", Reason: "r", IsEligible: true, CreatedAt: time.Now()}
	require.NoError(t, uow.SchemeMatchRepository().Insert(context.Background(), older))
	require.NoError(t, uow.SchemeMatchRepository().Insert(context.Background(), newer))

	matches, err := svc.ListMatches(context.Background(), "user_f1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "New", matches[0].SchemeName)
}
