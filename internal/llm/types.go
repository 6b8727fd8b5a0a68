package llm

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)
