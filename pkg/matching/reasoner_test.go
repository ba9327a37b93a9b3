package matching

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/memory"
	"github.com/TanaySingh02/Farmwise2.0/pkg/llm"
	memoryindex "github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
)

// scriptedLLM replays canned replies in order, regardless of input.
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

func testAggregate() *entity.FarmerAggregate {
	return &entity.FarmerAggregate{
		Farmer: &entity.Farmer{Id: "user_f1", Name: "Asha", State: "Maharashtra"},
		Plots:  []*entity.FarmerPlot{{FarmerId: "user_f1", AreaHectares: 2.0, IrrigationType: "drip"}},
		Crops:  []*entity.PlotCrop{{FarmerId: "user_f1", CropName: "rice", Season: "kharif"}},
	}
}

func newTestReasoner(t *testing.T, provider llm.LLMProvider, maxSteps int) (*Reasoner, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	registry := NewToolRegistry(memory.NewFactory(store), fixedEmbedder{vector: []float32{1, 0}}, memoryindex.NewMemoryIndex())
	return NewReasoner(provider, registry, maxSteps, logger.NopLogger{}), store
}

func TestMatchToolThenFinal(t *testing.T) {
	schemeId := uuid.NewString()
	provider := &scriptedLLM{replies: []string{
		`{"action": "tool", "tool": "lookup-by-name", "args": {"name": "irrigation"}}`,
		`{"action": "final", "matches": [{"scheme_id": "` + schemeId + `", "scheme_name": "Micro Irrigation Subsidy", "reason": "2.0 ha plot with drip irrigation growing rice in kharif"}]}`,
	}}

	reasoner, store := newTestReasoner(t, provider, 8)
	store.AddScheme(dripScheme())

	matches, err := reasoner.Match(context.Background(), testAggregate())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, schemeId, matches[0].SchemeId)
	assert.Contains(t, matches[0].Reason, "drip")
	assert.Equal(t, 2, provider.turn)
}

func TestMatchHonorsFencedJSON(t *testing.T) {
	provider := &scriptedLLM{replies: []string{
		"```json\n{\"action\": \"final\", \"matches\": []}\n```",
	}}

	reasoner, _ := newTestReasoner(t, provider, 8)

	matches, err := reasoner.Match(context.Background(), testAggregate())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchEmptyFinalIsValid(t *testing.T) {
	provider := &scriptedLLM{replies: []string{
		`{"action": "final", "matches": []}`,
	}}

	reasoner, _ := newTestReasoner(t, provider, 8)

	matches, err := reasoner.Match(context.Background(), testAggregate())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchStepCeiling(t *testing.T) {
	provider := &scriptedLLM{replies: []string{
		`{"action": "tool", "tool": "lookup-by-name", "args": {"name": "irrigation"}}`,
	}}

	reasoner, _ := newTestReasoner(t, provider, 3)

	_, err := reasoner.Match(context.Background(), testAggregate())
	require.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, 3, provider.turn)
}

func TestMatchInvalidFinalAnswer(t *testing.T) {
	provider := &scriptedLLM{replies: []string{
		`{"action": "final", "matches": [{"scheme_id": "not-a-uuid", "scheme_name": "X", "reason": "y"}]}`,
	}}

	reasoner, _ := newTestReasoner(t, provider, 8)

	_, err := reasoner.Match(context.Background(), testAggregate())
	assert.ErrorIs(t, err, ErrBadAnswer)
}

func TestMatchRecoversFromToolError(t *testing.T) {
	schemeId := uuid.NewString()
	provider := &scriptedLLM{replies: []string{
		`{"action": "tool", "tool": "lookup-by-id", "args": {"scheme_id": "garbage"}}`,
		`{"action": "final", "matches": [{"scheme_id": "` + schemeId + `", "scheme_name": "Micro Irrigation Subsidy", "reason": "drip irrigation fits"}]}`,
	}}

	reasoner, _ := newTestReasoner(t, provider, 8)

	matches, err := reasoner.Match(context.Background(), testAggregate())
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMatchRetriesUnparseableReply(t *testing.T) {
	provider := &scriptedLLM{replies: []string{
		`I think the farmer should apply for the irrigation scheme.`,
		`{"action": "final", "matches": []}`,
	}}

	reasoner, _ := newTestReasoner(t, provider, 8)

	matches, err := reasoner.Match(context.Background(), testAggregate())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSystemPromptListsAllTools(t *testing.T) {
	reasoner, _ := newTestReasoner(t, &scriptedLLM{replies: []string{""}}, 8)

	prompt := reasoner.systemPrompt()
	for _, spec := range ToolCatalog() {
		assert.True(t, strings.Contains(prompt, string(spec.Name)), "prompt missing tool %s", spec.Name)
	}
}
