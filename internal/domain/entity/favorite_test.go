package entity

import (
	"encoding/json"
	"testing"

	"holocron/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    CatalogKind
		wantErr bool
	}{
		{raw: "planet", want: KindPlanet},
		{raw: "Character", want: KindCharacter},
		{raw: " film ", want: KindFilm},
		{raw: "specie", want: KindSpecies},
		{raw: "species", want: KindSpecies},
		{raw: "droid", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			kind, err := ParseCatalogKind(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownCatalogKind))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestNewFavoriteTarget(t *testing.T) {
	target, err := NewFavoriteTarget(KindStarship, 9)
	require.NoError(t, err)
	assert.Equal(t, FavoriteTarget{Kind: KindStarship, ID: 9}, target)

	_, err = NewFavoriteTarget(KindStarship, 0)
	assert.True(t, errors.Is(err, ErrInvalidFavoriteTarget))

	_, err = NewFavoriteTarget(CatalogKind("droid"), 1)
	assert.True(t, errors.Is(err, ErrInvalidFavoriteTarget))
}

func TestFavoriteView_OnlyTargetSlotIsSet(t *testing.T) {
	for _, kind := range CatalogKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			favorite := &Favorite{ID: 4, UserID: 3, Target: FavoriteTarget{Kind: kind, ID: 7}, TargetName: "Tatooine"}

			raw, err := json.Marshal(favorite.View())
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(raw, &decoded))

			slots := map[CatalogKind]string{
				KindFilm:      "film",
				KindSpecies:   "species",
				KindStarship:  "starship",
				KindVehicle:   "vehicle",
				KindCharacter: "character",
				KindPlanet:    "planet",
			}
			for slotKind, key := range slots {
				value, present := decoded[key]
				assert.True(t, present, "slot %s must be serialized", key)
				if slotKind == kind {
					assert.Equal(t, "Tatooine", value)
				} else {
					assert.Nil(t, value)
				}
			}
			assert.EqualValues(t, 4, decoded["id"])
			assert.Equal(t, string(kind), decoded["item_type"])
			assert.EqualValues(t, 7, decoded["item_id"])
		})
	}
}

func TestCatalogKind_Title(t *testing.T) {
	assert.Equal(t, "Planet", KindPlanet.Title())
	assert.Equal(t, "Species", KindSpecies.Title())
	assert.Equal(t, "", CatalogKind("").Title())
}
