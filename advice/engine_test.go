package advice

import (
	"strings"
	"testing"

	"MakeupBot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allAnswers enumerates every valid answer tuple.
func allAnswers() []model.Answers {
	var out []model.Answers
	for _, s := range model.Options(model.DimensionSkin) {
		for _, t := range model.Options(model.DimensionTone) {
			for _, u := range model.Options(model.DimensionUndertone) {
				for _, e := range model.Options(model.DimensionEyes) {
					for _, o := range model.Options(model.DimensionOccasion) {
						out = append(out, model.Answers{
							Skin:      s.Value,
							Tone:      t.Value,
							Undertone: u.Value,
							Eyes:      e.Value,
							Occasion:  o.Value,
						})
					}
				}
			}
		}
	}
	return out
}

func TestRecommend_Deterministic(t *testing.T) {
	for _, a := range allAnswers() {
		for _, level := range []Level{Short, Full} {
			first := Recommend(a, level)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, Recommend(a, level))
			}
		}
	}
}

func TestRecommend_FullListsEveryDimensionInOrder(t *testing.T) {
	for _, a := range allAnswers() {
		text := Recommend(a, Full)

		last := -1
		for _, d := range model.Dimensions {
			idx := strings.Index(text, Label(d))
			require.GreaterOrEqual(t, idx, 0, "label for %s missing", d)
			assert.Greater(t, idx, last, "label for %s out of order", d)
			assert.Equal(t, 1, strings.Count(text, Label(d)))
			last = idx
		}
	}
}

func TestRecommend_FullUsesSelectedFragments(t *testing.T) {
	a := model.Answers{Skin: "oily", Tone: "tan", Undertone: "cool", Eyes: "hooded", Occasion: "photo"}
	text := Recommend(a, Full)

	assert.Contains(t, text, skinTable.Rules["oily"].Detail)
	assert.Contains(t, text, toneTable.Rules["tan"].Detail)
	assert.Contains(t, text, undertoneTable.Rules["cool"].Detail)
	assert.Contains(t, text, eyesTable.Rules["hooded"].Detail)
	assert.Contains(t, text, occasionTable.Rules["photo"].Detail)
}

func TestRecommend_ShortLeadsWithOccasion(t *testing.T) {
	a := model.Answers{Skin: "dry", Tone: "light", Undertone: "cool", Eyes: "almond", Occasion: "daily"}
	text := Recommend(a, Short)

	occ := strings.Index(text, occasionTable.Rules["daily"].Brief)
	skin := strings.Index(text, skinTable.Rules["dry"].Brief)
	undertone := strings.Index(text, undertoneTable.Rules["cool"].Brief)

	require.GreaterOrEqual(t, occ, 0)
	assert.Greater(t, skin, occ)
	assert.Greater(t, undertone, skin)
	assert.NotContains(t, text, eyesTable.Rules["almond"].Brief)
}

func TestRecommend_FallbackForUnknownValues(t *testing.T) {
	cases := []model.Answers{
		{Skin: "scaly", Tone: "green", Undertone: "neutral", Eyes: "round", Occasion: "wedding"},
		{},
		{Skin: "dry", Tone: "light", Undertone: "cool", Eyes: "almond", Occasion: "funeral"},
	}
	for _, a := range cases {
		short := Recommend(a, Short)
		full := Recommend(a, Full)
		assert.NotEmpty(t, short)
		assert.NotEmpty(t, full)
		for _, d := range model.Dimensions {
			assert.Contains(t, full, Label(d))
		}
	}

	full := Recommend(cases[0], Full)
	assert.Contains(t, full, skinTable.Fallback.Detail)
	assert.Contains(t, full, occasionTable.Fallback.Detail)
}

func TestRules_CoverEveryOption(t *testing.T) {
	for _, entry := range tables {
		for _, o := range model.Options(entry.Dimension) {
			r, ok := entry.Table.Rules[o.Value]
			if assert.True(t, ok, "%s:%s has no rule", entry.Dimension, o.Value) {
				assert.NotEmpty(t, r.Brief)
				assert.NotEmpty(t, r.Detail)
			}
		}
		assert.NotEmpty(t, entry.Table.Fallback.Brief)
		assert.NotEmpty(t, entry.Table.Fallback.Detail)
	}
}
