package factory

import (
	"fmt"

	"github.com/TanaySingh02/Farmwise2.0/pkg/llm"
	"github.com/TanaySingh02/Farmwise2.0/pkg/llm/gemini"
	"github.com/TanaySingh02/Farmwise2.0/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

func NewProvider(providerType, apiKey, ollamaBaseURL, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case ProviderGemini:
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", providerType)
	}
}
