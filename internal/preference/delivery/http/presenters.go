package http

import (
	"sommelier-srv/internal/event"
	"sommelier-srv/internal/model"
	"sommelier-srv/internal/preference"
)

const nameKey = "name"

type putPreferencesReq struct {
	UserID      string
	Preferences model.Preferences
	Fields      []string
}

func (r putPreferencesReq) toInput() preference.PutInput {
	return preference.PutInput{
		UserID:      r.UserID,
		Preferences: r.Preferences,
		Source:      event.SourceAPI,
		Fields:      r.Fields,
	}
}

type preferenceValues struct {
	Name              string `json:"name,omitempty"`
	FavoriteWine      string `json:"favorite_wine"`
	FavoriteBeer      string `json:"favorite_beer"`
	FavoriteCocktail  string `json:"favorite_cocktail"`
	FavoriteSpirit    string `json:"favorite_spirit"`
	AlcoholPreference string `json:"alcohol_preference"`
	SweetOrDry        string `json:"sweet_or_dry"`
	RedOrWhiteWine    string `json:"red_or_white_wine"`
	LightOrStrong     string `json:"light_or_strong"`
	VeganFriendly     bool   `json:"vegan_friendly"`
	GlutenFree        bool   `json:"gluten_free"`
}

type preferencesResp struct {
	UserID      string           `json:"user_id"`
	Preferences preferenceValues `json:"preferences"`
	Rendered    string           `json:"rendered"`
}

func (h *handler) newPreferencesResp(userID string, p model.Preferences) preferencesResp {
	return preferencesResp{
		UserID:      userID,
		Preferences: preferenceValues(p),
		Rendered:    preference.Render(p),
	}
}
