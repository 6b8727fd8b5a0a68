package preference

import (
	"encoding/json"
	"errors"
	"testing"

	"sommelier-srv/internal/model"
)

func TestSetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
		check   func(model.Preferences) bool
	}{
		{"text", model.PrefFavoriteBeer, " Stout ", nil, func(p model.Preferences) bool { return p.FavoriteBeer == "Stout" }},
		{"number as text", model.PrefLightOrStrong, json.Number("12"), nil, func(p model.Preferences) bool { return p.LightOrStrong == "12" }},
		{"flag bool", model.PrefVeganFriendly, true, nil, func(p model.Preferences) bool { return p.VeganFriendly }},
		{"flag yes", model.PrefGlutenFree, "Yes", nil, func(p model.Preferences) bool { return p.GlutenFree }},
		{"null resets", model.PrefFavoriteWine, nil, nil, func(p model.Preferences) bool { return p.FavoriteWine == "" }},
		{"flag garbage", model.PrefGlutenFree, "sometimes", ErrInvalidValue, nil},
		{"text as bool", model.PrefFavoriteWine, true, ErrInvalidValue, nil},
		{"unknown", "favorite_food", "pizza", ErrUnknownField, nil},
		{"name is not a preference", "name", "Casey", ErrUnknownField, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Preferences{FavoriteWine: "Merlot"}
			err := SetValue(&p, tt.key, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(p) {
				t.Errorf("unexpected record: %+v", p)
			}
		})
	}
}

func TestIsDefault(t *testing.T) {
	if !IsDefault(model.Preferences{Name: "Casey"}) {
		t.Error("expected record with only a name to be default")
	}
	if IsDefault(model.Preferences{GlutenFree: true}) {
		t.Error("expected record with a flag set not to be default")
	}
}

func TestLookupField(t *testing.T) {
	f, ok := LookupField(model.PrefVeganFriendly)
	if !ok || f.Kind != KindFlag {
		t.Errorf("unexpected field: %+v %v", f, ok)
	}
	if _, ok := LookupField("name"); ok {
		t.Error("name must not be a recognized preference field")
	}
}
