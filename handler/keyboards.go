package handler

import (
	"MakeupBot/model"

	"github.com/go-telegram/bot/models"
)

var questions = map[model.Dimension]string{
	model.DimensionSkin:      "Какая у тебя кожа?",
	model.DimensionTone:      "Какой у тебя тон кожи?",
	model.DimensionUndertone: "Подтон кожи:",
	model.DimensionEyes:      "Какие глаза ближе всего по форме?",
	model.DimensionOccasion:  "Для какого случая макияж?",
}

func button(text, data string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: data}
}

// answerKeyboard lays out the options of d two per row.
func answerKeyboard(d model.Dimension) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton
	for _, o := range model.Options(d) {
		row = append(row, button(o.Label, encodeAnswer(d, o.Value)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func startKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{button("👉 Начать", cbStartQuiz)},
	}}
}

func resultKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{button("📖 Подробнее", cbDetails)},
		{button("💾 Сохранить", cbSave)},
		{button("💌 Получать советы", cbTipsOn)},
	}}
}

func tipsConfirmKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{button("Да, хочу ✨", cbTipsYes)},
		{button("Не сейчас", cbTipsNo)},
	}}
}
