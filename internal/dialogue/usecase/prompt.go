package usecase

import "fmt"

func buildRelevancePrompt(query string) string {
	return fmt.Sprintf(
		"Does the following message relate to beverages, alcoholic drinks, or food pairings?\n"+
			"Message: '%s'\n"+
			"Reply only 'yes' or 'no'.",
		query,
	)
}

func buildAnswerPrompt(renderedPreferences, query string) string {
	return fmt.Sprintf(
		"You are a sommelier assistant. Here are the user's preferences:\n%s\n\nUser query: %s",
		renderedPreferences, query,
	)
}
