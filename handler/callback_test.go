package handler

import (
	"testing"

	"MakeupBot/model"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAnswer(t *testing.T) {
	for _, d := range model.Dimensions {
		for _, o := range model.Options(d) {
			got, ok := decodeAnswer(encodeAnswer(d, o.Value))
			assert.True(t, ok)
			assert.Equal(t, model.Answer{Dimension: d, Value: o.Value}, got)
		}
	}

	for _, data := range []string{"", "save", "q:", "q:skin", "q:skin:almond", "q:hair:long", "skin:dry"} {
		_, ok := decodeAnswer(data)
		assert.False(t, ok, data)
	}
}

func TestAnswerKeyboard_FitsTelegramLimits(t *testing.T) {
	for _, d := range model.Dimensions {
		kb := answerKeyboard(d)
		count := 0
		for _, row := range kb.InlineKeyboard {
			assert.LessOrEqual(t, len(row), 2)
			for _, b := range row {
				assert.LessOrEqual(t, len(b.CallbackData), 64)
				count++
			}
		}
		assert.Equal(t, len(model.Options(d)), count)
		assert.NotEmpty(t, questions[d])
	}
}
