package usecase

const (
	defaultName = "there"

	capabilitiesPhrase = "what preferences can i set"

	greetingTemplate = "Hello, %s! 👋 I'm your sommelier assistant. " +
		"I can help you pick the perfect wine, beer, or cocktail — just ask! 🍇"
	recallTemplate = "Hello, %s! 👋\n\n%s"

	deflectionMessage = "🍇 I'm your sommelier assistant, so I specialize in wine, beer, cocktails, spirits, " +
		"and food pairings. Let me know if you have a question in that area! 😊"
	providerErrorTemplate  = "Sorry, the assistant service encountered an error: %v"
	unexpectedErrorMessage = "An unexpected error occurred while processing your request."
)

// Matched as case-insensitive substrings, so "hi" also matches inside "which".
var greetingTokens = []string{"hi", "hello", "hey", "yo", "what's up", "howdy"}

var recallPhrases = []string{"my preferences", "what are my preferences"}
