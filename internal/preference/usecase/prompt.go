package usecase

import (
	"encoding/json"
	"strings"

	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference"
)

// buildExtractPrompt - system prompt of update detection
func (uc *implUseCase) buildExtractPrompt(current model.Preferences, utterance string) string {
	currentJSON, _ := json.Marshal(current)

	keys := make([]string, len(preference.Fields))
	for i, f := range preference.Fields {
		keys[i] = f.Key
	}

	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. Based on the user's input below, determine if they are updating a preference.\n")
	sb.WriteString("Here are current preferences: ")
	sb.Write(currentJSON)
	sb.WriteString("\n")
	sb.WriteString("User message: '")
	sb.WriteString(utterance)
	sb.WriteString("'\n")
	sb.WriteString("Recognized preference keys: ")
	sb.WriteString(strings.Join(keys, ", "))
	sb.WriteString("\n")
	sb.WriteString("Examples:\n- favorite_wine: Merlot\n- vegan_friendly: true\n")
	sb.WriteString("If it contains a preference update, reply ONLY in JSON like this:\n")
	sb.WriteString(`{"favorite_wine": "Merlot"}`)
	sb.WriteString("\n")
	sb.WriteString("If it doesn't update any preference, reply ONLY with an empty JSON: {}")
	return sb.String()
}
