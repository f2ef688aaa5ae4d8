// Package advice turns a complete answer set into a makeup plan.
package advice

import (
	"strings"

	"MakeupBot/model"
)

// Level selects how much of the plan Recommend renders.
type Level int

const (
	Short Level = iota
	Full
)

const (
	shortHeader = "💄 <b>Твой макияж</b>"
	shortFooter = "Нажми «Подробнее», чтобы увидеть полный план."
	fullHeader  = "💄 <b>Твой подробный план</b>"
)

// Recommend renders the plan for answers. It is deterministic and never
// returns an empty string; unknown values use the dimension's fallback.
func Recommend(answers model.Answers, level Level) string {
	if level == Full {
		return full(answers)
	}
	return short(answers)
}

func short(answers model.Answers) string {
	var sb strings.Builder
	sb.WriteString(shortHeader)
	sb.WriteString("\n\n")
	for _, d := range briefOrder {
		sb.WriteString("• ")
		sb.WriteString(tableFor(d).lookup(answers.Get(d)).Brief)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(shortFooter)
	return sb.String()
}

func full(answers model.Answers) string {
	blocks := make([]string, 0, len(tables)+1)
	blocks = append(blocks, fullHeader)
	for _, t := range tables {
		r := t.Table.lookup(answers.Get(t.Dimension))
		blocks = append(blocks, "<b>"+t.Table.Label+"</b>\n"+r.Detail)
	}
	return strings.Join(blocks, "\n\n")
}

// Label returns the heading used for d in the full plan.
func Label(d model.Dimension) string {
	return tableFor(d).Label
}

func tableFor(d model.Dimension) table {
	for _, t := range tables {
		if t.Dimension == d {
			return t.Table
		}
	}
	return table{}
}
