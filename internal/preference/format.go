package preference

import (
	"strings"

	"sommelier-srv/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	settableFieldsHeader = "Here are the preferences you can set:\n"
	settableFieldsFooter = "\nYou can update your preferences by telling me something like 'My favorite wine is Merlot.' 😊"

	renderHeader = "Here are your current preferences:\n"
	renderBullet = "➡ "

	// NoPreferencesMessage is rendered for a record without any value.
	NoPreferencesMessage = "You haven't set any preferences yet! Want to set one now? 😊"

	updateSummaryPrefix = "✅ I’ve updated your preferences: "
)

// ListSettableFields enumerates the recognized preferences with a short hint on how to set them.
func ListSettableFields() string {
	var b strings.Builder
	b.WriteString(settableFieldsHeader)
	for _, f := range Fields {
		b.WriteString(f.Emoji)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString("\n")
	}
	b.WriteString(settableFieldsFooter)
	return b.String()
}

// Render lists every field that carries a value, one "➡ Title: value" line each, in canonical order.
func Render(p model.Preferences) string {
	lines := make([]string, 0, len(Fields))
	for _, f := range Fields {
		v, _ := Value(p, f.Key)
		switch x := v.(type) {
		case string:
			if x != "" {
				lines = append(lines, renderBullet+TitleCase(f.Key)+": "+x)
			}
		case bool:
			if x {
				lines = append(lines, renderBullet+TitleCase(f.Key)+": Yes")
			}
		}
	}
	if len(lines) == 0 {
		return NoPreferencesMessage
	}
	return renderHeader + strings.Join(lines, "\n")
}

// TitleCase turns a snake_case key into Title Case words: red_or_white_wine -> Red Or White Wine.
func TitleCase(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// UpdateSummary is the reply sent after fields were updated from a chat message.
func UpdateSummary(fields []string) string {
	titles := make([]string, len(fields))
	for i, f := range fields {
		titles[i] = TitleCase(f)
	}
	return updateSummaryPrefix + strings.Join(titles, ", ") + "."
}
