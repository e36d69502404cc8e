package models

// LetterPageData данные страницы печати письма
type LetterPageData struct {
	Title  string
	Letter string
}
