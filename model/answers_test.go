package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	a := Answers{Skin: "dry", Tone: "light", Undertone: "cool", Eyes: "almond", Occasion: "daily"}

	data, err := a.MarshalSnapshot()
	require.NoError(t, err)
	assert.JSONEq(t, `{"skin":"dry","tone":"light","undertone":"cool","eyes":"almond","occasion":"daily"}`, string(data))

	got, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestParseSnapshot_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":   `{"skin":`,
		"incomplete": `{"skin":"dry","tone":"light"}`,
		"empty":      `{}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDimension_Valid(t *testing.T) {
	assert.True(t, DimensionSkin.Valid("combo"))
	assert.False(t, DimensionSkin.Valid("almond"))
	assert.True(t, DimensionOccasion.Valid("photo"))
	assert.False(t, Dimension("hair").Valid("long"))
	assert.False(t, Dimension("hair").Known())
	for _, d := range Dimensions {
		assert.True(t, d.Known())
		assert.NotEmpty(t, Options(d))
	}
}

func TestStage_Expects(t *testing.T) {
	stages := []Stage{StageAskSkin, StageAskTone, StageAskUndertone, StageAskEyes, StageAskOccasion}
	for i, s := range stages {
		d, ok := s.Expects()
		require.True(t, ok)
		assert.Equal(t, Dimensions[i], d)
		assert.Equal(t, s, StageFromString(s.String()))
	}

	_, ok := StageIdle.Expects()
	assert.False(t, ok)
	_, ok = StageCompleted.Expects()
	assert.False(t, ok)
	assert.Equal(t, StageIdle, StageFromString("bogus"))
}
