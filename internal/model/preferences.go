package model

// Preference field keys, in canonical order.
const (
	PrefFavoriteWine      = "favorite_wine"
	PrefFavoriteBeer      = "favorite_beer"
	PrefFavoriteCocktail  = "favorite_cocktail"
	PrefFavoriteSpirit    = "favorite_spirit"
	PrefAlcoholPreference = "alcohol_preference"
	PrefSweetOrDry        = "sweet_or_dry"
	PrefRedOrWhiteWine    = "red_or_white_wine"
	PrefLightOrStrong     = "light_or_strong"
	PrefVeganFriendly     = "vegan_friendly"
	PrefGlutenFree        = "gluten_free"
)

// Preferences is the per-user record stored at users/{user_id}/chatbot_preferences.
// Absent fields decode to "" / false.
type Preferences struct {
	// Name is the display name used in greetings. It is a profile attribute, not a preference.
	Name string `json:"name,omitempty"`

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
