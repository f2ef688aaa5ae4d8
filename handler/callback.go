package handler

import (
	"strings"

	"MakeupBot/model"
)

// Callback data sent by inline buttons.
const (
	cbStartQuiz = "start_quiz"
	cbSave      = "save"
	cbDetails   = "details"
	cbTipsOn    = "tips_on"
	cbTipsYes   = "tips_yes"
	cbTipsNo    = "tips_no"

	answerPrefix = "q:"
)

func encodeAnswer(d model.Dimension, value string) string {
	return answerPrefix + string(d) + ":" + value
}

// decodeAnswer turns "q:<dimension>:<value>" into a typed answer. Unknown
// dimensions and values outside the dimension's options are rejected here so
// the quiz never sees them.
func decodeAnswer(data string) (model.Answer, bool) {
	rest, ok := strings.CutPrefix(data, answerPrefix)
	if !ok {
		return model.Answer{}, false
	}
	dim, value, ok := strings.Cut(rest, ":")
	if !ok {
		return model.Answer{}, false
	}
	d := model.Dimension(dim)
	if !d.Known() || !d.Valid(value) {
		return model.Answer{}, false
	}
	return model.Answer{Dimension: d, Value: value}, true
}
