package preference

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sommelier-srv/internal/model"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindFlag
)

// Field describes one recognized preference.
type Field struct {
	Key   string
	Kind  FieldKind
	Emoji string
	Label string
}

// Fields lists the recognized preferences in canonical order.
var Fields = []Field{
	{Key: model.PrefFavoriteWine, Kind: KindText, Emoji: "🍇", Label: "Favorite Wine"},
	{Key: model.PrefFavoriteBeer, Kind: KindText, Emoji: "🍺", Label: "Favorite Beer"},
	{Key: model.PrefFavoriteCocktail, Kind: KindText, Emoji: "🍹", Label: "Favorite Cocktail"},
	{Key: model.PrefFavoriteSpirit, Kind: KindText, Emoji: "🥃", Label: "Favorite Spirit"},
	{Key: model.PrefAlcoholPreference, Kind: KindText, Emoji: "🎯", Label: "Alcohol Preference (e.g., wine, beer, spirits)"},
	{Key: model.PrefSweetOrDry, Kind: KindText, Emoji: "🍬", Label: "Sweet or Dry"},
	{Key: model.PrefRedOrWhiteWine, Kind: KindText, Emoji: "🔴", Label: "Red or White Wine"},
	{Key: model.PrefLightOrStrong, Kind: KindText, Emoji: "💪", Label: "Light or Strong Drinks"},
	{Key: model.PrefVeganFriendly, Kind: KindFlag, Emoji: "🌱", Label: "Vegan-Friendly"},
	{Key: model.PrefGlutenFree, Kind: KindFlag, Emoji: "🍾", Label: "Gluten-Free"},
}

// LookupField finds a recognized field by key.
func LookupField(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func textField(p *model.Preferences, key string) *string {
	switch key {
	case model.PrefFavoriteWine:
		return &p.FavoriteWine
	case model.PrefFavoriteBeer:
		return &p.FavoriteBeer
	case model.PrefFavoriteCocktail:
		return &p.FavoriteCocktail
	case model.PrefFavoriteSpirit:
		return &p.FavoriteSpirit
	case model.PrefAlcoholPreference:
		return &p.AlcoholPreference
	case model.PrefSweetOrDry:
		return &p.SweetOrDry
	case model.PrefRedOrWhiteWine:
		return &p.RedOrWhiteWine
	case model.PrefLightOrStrong:
		return &p.LightOrStrong
	}
	return nil
}

func flagField(p *model.Preferences, key string) *bool {
	switch key {
	case model.PrefVeganFriendly:
		return &p.VeganFriendly
	case model.PrefGlutenFree:
		return &p.GlutenFree
	}
	return nil
}

// Value returns the value of key: a string for text fields, a bool for flags.
func Value(p model.Preferences, key string) (any, bool) {
	if s := textField(&p, key); s != nil {
		return *s, true
	}
	if b := flagField(&p, key); b != nil {
		return *b, true
	}
	return nil, false
}

// SetValue assigns a decoded JSON value to key. Text fields take strings and numbers,
// flags take booleans or yes/no/true/false strings. null resets the field.
func SetValue(p *model.Preferences, key string, v any) error {
	if s := textField(p, key); s != nil {
		switch x := v.(type) {
		case nil:
			*s = ""
		case string:
			*s = strings.TrimSpace(x)
		case json.Number:
			*s = x.String()
		case float64:
			*s = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			return fmt.Errorf("%w: %s expects text, got %T", ErrInvalidValue, key, v)
		}
		return nil
	}

	if b := flagField(p, key); b != nil {
		switch x := v.(type) {
		case nil:
			*b = false
		case bool:
			*b = x
		case string:
			parsed, ok := parseFlag(x)
			if !ok {
				return fmt.Errorf("%w: %s expects yes or no, got %q", ErrInvalidValue, key, x)
			}
			*b = parsed
		default:
			return fmt.Errorf("%w: %s expects a boolean, got %T", ErrInvalidValue, key, v)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, key)
}

func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y":
		return true, true
	case "false", "no", "n", "":
		return false, true
	}
	return false, false
}

// IsDefault reports whether no recognized field carries a value. Name is ignored.
func IsDefault(p model.Preferences) bool {
	for _, f := range Fields {
		v, _ := Value(p, f.Key)
		switch x := v.(type) {
		case string:
			if x != "" {
				return false
			}
		case bool:
			if x {
				return false
			}
		}
	}
	return true
}
