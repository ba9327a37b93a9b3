package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TanaySingh02/Farmwise2.0/internal/constant"
	"github.com/TanaySingh02/Farmwise2.0/internal/dto"
	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/pkg/llm"
)

var (
	// ErrStepLimit is returned when the loop hits its iteration ceiling
	// before producing a final answer.
	ErrStepLimit = errors.New("reasoning step limit reached")
	// ErrBadAnswer is returned when the final answer fails schema
	// validation.
	ErrBadAnswer = errors.New("final answer failed validation")
)

// MatchProposal is one entry of the loop's final answer.
type MatchProposal struct {
	SchemeId   string `json:"scheme_id" validate:"required,uuid"`
	SchemeName string `json:"scheme_name" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

type decision struct {
	Action  string          `json:"action"`
	Tool    string          `json:"tool"`
	Args    json.RawMessage `json:"args"`
	Matches []MatchProposal `json:"matches"`
}

const (
	actionTool  = "tool"
	actionFinal = "final"
)

// Reasoner runs the bounded tool-calling loop. Each LLM turn either
// requests one tool invocation or emits the final match list. Tool
// errors are fed back as failed tool results so the model can adjust;
// only the step ceiling and an invalid final answer abort the run.
type Reasoner struct {
	provider llm.LLMProvider
	tools    *ToolRegistry
	maxSteps int
	validate *validator.Validate
	log      logger.ILogger
}

func NewReasoner(provider llm.LLMProvider, tools *ToolRegistry, maxSteps int, log logger.ILogger) *Reasoner {
	if maxSteps <= 0 {
		maxSteps = 8
	}
	return &Reasoner{
		provider: provider,
		tools:    tools,
		maxSteps: maxSteps,
		validate: validator.New(),
		log:      log,
	}
}

// Match reasons over the farmer aggregate and returns scheme proposals.
// An empty list with a nil error is the valid "no matches" outcome.
func (r *Reasoner) Match(ctx context.Context, aggregate *entity.FarmerAggregate) ([]MatchProposal, error) {
	profile := dto.NewFarmerProfileResponse(aggregate)
	profileJson, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal farmer profile: %w", err)
	}

	history := []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: r.systemPrompt(),
		},
		{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Here are the complete details of a farmer:\n%s", string(profileJson)),
		},
	}

	for step := 0; step < r.maxSteps; step++ {
		raw, err := r.provider.Chat(ctx, history, llm.WithTemperature(0.2))
		if err != nil {
			return nil, fmt.Errorf("reasoning step %d: %w", step+1, err)
		}

		dec, err := parseDecision(raw)
		if err != nil {
			r.log.Warn("matching_reasoner", "unparseable decision", map[string]interface{}{
				"step":  step + 1,
				"error": err.Error(),
			})
			history = append(history,
				llm.Message{Role: llm.RoleAssistant, Content: raw},
				llm.Message{Role: llm.RoleUser, Content: "Your reply could not be parsed. Respond with exactly one JSON decision object and nothing else."},
			)
			continue
		}

		switch dec.Action {
		case actionFinal:
			for i, proposal := range dec.Matches {
				if err := r.validate.Struct(proposal); err != nil {
					return nil, fmt.Errorf("%w: match %d: %v", ErrBadAnswer, i, err)
				}
			}
			r.log.Info("matching_reasoner", "final answer", map[string]interface{}{
				"steps":   step + 1,
				"matches": len(dec.Matches),
			})
			return dec.Matches, nil

		case actionTool:
			resultContent := r.invokeTool(ctx, step, dec)
			history = append(history,
				llm.Message{Role: llm.RoleAssistant, Content: raw},
				llm.Message{Role: llm.RoleUser, Content: resultContent},
			)

		default:
			history = append(history,
				llm.Message{Role: llm.RoleAssistant, Content: raw},
				llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("Unknown action %q. Use \"tool\" or \"final\".", dec.Action)},
			)
		}
	}

	return nil, fmt.Errorf("%w: no final answer after %d steps", ErrStepLimit, r.maxSteps)
}

func (r *Reasoner) invokeTool(ctx context.Context, step int, dec *decision) string {
	result, err := r.tools.Invoke(ctx, ToolName(dec.Tool), dec.Args)
	if err != nil {
		r.log.Warn("matching_reasoner", "tool invocation failed", map[string]interface{}{
			"step":  step + 1,
			"tool":  dec.Tool,
			"error": err.Error(),
		})
		failure, _ := json.Marshal(map[string]string{
			"tool":  dec.Tool,
			"error": err.Error(),
		})
		return string(failure)
	}

	r.log.Debug("matching_reasoner", "tool invoked", map[string]interface{}{
		"step": step + 1,
		"tool": dec.Tool,
	})

	resultJson, err := json.Marshal(map[string]interface{}{
		"tool":   dec.Tool,
		"result": result,
	})
	if err != nil {
		failure, _ := json.Marshal(map[string]string{
			"tool":  dec.Tool,
			"error": "tool result could not be serialized",
		})
		return string(failure)
	}
	return string(resultJson)
}

func (r *Reasoner) systemPrompt() string {
	var sb strings.Builder
	sb.WriteString(constant.SchemeMatchingSystemPrompt)
	sb.WriteString("\n\n## Available Tools\n")
	for _, spec := range ToolCatalog() {
		sb.WriteString(fmt.Sprintf("- %s: %s Arguments: %s\n", spec.Name, spec.Description, spec.Arguments))
	}
	return sb.String()
}

// parseDecision tolerates markdown code fences around the JSON object.
func parseDecision(raw string) (*decision, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var dec decision
	if err := json.Unmarshal([]byte(cleaned), &dec); err != nil {
		return nil, fmt.Errorf("decode decision: %w", err)
	}
	if dec.Action == "" {
		return nil, fmt.Errorf("decision has no action")
	}
	return &dec, nil
}
