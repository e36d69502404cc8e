package letter

import "strings"

// reasonExpansions канонические короткие причины и их развернутые формулировки
var reasonExpansions = map[string]string{
	"Medical appointment":  "a scheduled medical appointment that I am unable to reschedule",
	"Family emergency":     "an urgent family emergency that requires my immediate presence and support",
	"Fever":                "a fever that requires medical rest and recovery",
	"Personal matters":     "personal matters that require my immediate attention",
	"Medical consultation": "a consultation with a specialist physician",
	"Family celebration":   "a family celebration and the cultural obligations that come with it",
	"Wedding":              "a family wedding that I am expected to attend",
	"Bereavement":          "the loss of a close family member and the arrangements that follow",
}

// ExpandReason развернутая формулировка для известной причины, иначе исходный текст в нижнем регистре
func ExpandReason(reason string) string {
	if expanded, ok := reasonExpansions[reason]; ok {
		return expanded
	}
	return strings.ToLower(reason)
}

var generalReasonSuggestions = []string{
	"Medical appointment",
	"Family emergency",
	"Fever",
	"Personal matters",
	"Medical consultation",
	"Family celebration",
}

var institutionalReasonSuggestions = []string{
	"personal reason",
	"health issue",
	"family matter",
	"medical appointment",
	"emergency",
}

// ReasonSuggestions быстрые варианты причины для формы указанного вида
func ReasonSuggestions(kind FormKind) []string {
	var src []string
	switch kind {
	case KindGeneral:
		src = generalReasonSuggestions
	case KindInstitutional:
		src = institutionalReasonSuggestions
	}
	return append([]string(nil), src...)
}
