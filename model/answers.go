package model

import (
	"encoding/json"
	"fmt"
)

// Dimension is one questionnaire axis.
type Dimension string

const (
	DimensionSkin      Dimension = "skin"
	DimensionTone      Dimension = "tone"
	DimensionUndertone Dimension = "undertone"
	DimensionEyes      Dimension = "eyes"
	DimensionOccasion  Dimension = "occasion"
)

// Dimensions lists every axis in the order the quiz asks them.
var Dimensions = []Dimension{
	DimensionSkin,
	DimensionTone,
	DimensionUndertone,
	DimensionEyes,
	DimensionOccasion,
}

// Option is one selectable value of a dimension together with its button label.
type Option struct {
	Value string
	Label string
}

var options = map[Dimension][]Option{
	DimensionSkin: {
		{Value: "dry", Label: "Сухая"},
		{Value: "normal", Label: "Нормальная"},
		{Value: "combo", Label: "Комбинированная"},
		{Value: "oily", Label: "Жирная"},
		{Value: "unknown", Label: "Не знаю 🤍"},
	},
	DimensionTone: {
		{Value: "light", Label: "Светлый"},
		{Value: "medium", Label: "Средний"},
		{Value: "tan", Label: "Смуглый"},
	},
	DimensionUndertone: {
		{Value: "warm", Label: "Тёплый"},
		{Value: "cool", Label: "Холодный"},
		{Value: "unknown", Label: "Не знаю"},
	},
	DimensionEyes: {
		{Value: "small", Label: "Маленькие"},
		{Value: "big", Label: "Большие"},
		{Value: "hooded", Label: "Нависшее веко"},
		{Value: "almond", Label: "Миндалевидные"},
	},
	DimensionOccasion: {
		{Value: "daily", Label: "Каждый день"},
		{Value: "date", Label: "Свидание"},
		{Value: "party", Label: "Праздник"},
		{Value: "photo", Label: "Фото / видео"},
	},
}

// Options returns the selectable values of d in display order.
func Options(d Dimension) []Option {
	return options[d]
}

// Valid reports whether value belongs to the enumeration of d.
func (d Dimension) Valid(value string) bool {
	for _, o := range options[d] {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Known reports whether d is one of the five quiz dimensions.
func (d Dimension) Known() bool {
	_, ok := options[d]
	return ok
}

// Answer is a single decoded button press: which question and which value.
type Answer struct {
	Dimension Dimension
	Value     string
}

// Answers is the complete answer tuple of a finished quiz.
type Answers struct {
	Skin      string `json:"skin"`
	Tone      string `json:"tone"`
	Undertone string `json:"undertone"`
	Eyes      string `json:"eyes"`
	Occasion  string `json:"occasion"`
}

// Get returns the value recorded for d.
func (a Answers) Get(d Dimension) string {
	switch d {
	case DimensionSkin:
		return a.Skin
	case DimensionTone:
		return a.Tone
	case DimensionUndertone:
		return a.Undertone
	case DimensionEyes:
		return a.Eyes
	case DimensionOccasion:
		return a.Occasion
	}
	return ""
}

// Complete reports whether all five dimensions carry a value.
func (a Answers) Complete() bool {
	for _, d := range Dimensions {
		if a.Get(d) == "" {
			return false
		}
	}
	return true
}

// MarshalSnapshot encodes the answers as the persisted JSON object.
func (a Answers) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(a)
}

// ParseSnapshot decodes a persisted snapshot. Incomplete snapshots are rejected.
func ParseSnapshot(data []byte) (Answers, error) {
	var a Answers
	if err := json.Unmarshal(data, &a); err != nil {
		return Answers{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if !a.Complete() {
		return Answers{}, ErrInvalidSnapshot
	}
	return a, nil
}

// With returns a copy of a with d set to value.
func (a Answers) With(d Dimension, value string) Answers {
	switch d {
	case DimensionSkin:
		a.Skin = value
	case DimensionTone:
		a.Tone = value
	case DimensionUndertone:
		a.Undertone = value
	case DimensionEyes:
		a.Eyes = value
	case DimensionOccasion:
		a.Occasion = value
	}
	return a
}
