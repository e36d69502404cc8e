package letter

// ValidationError первое невыполненное правило формы
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate проверяет сначала даты выбранного режима, затем базовые обязательные поля.
// Возвращается только первое нарушение.
func Validate(form Form) error {
	sel := form.DateSelection()
	if !sel.isComplete() {
		field := Field("")
		for _, f := range sel.RequiredFields() {
			if form.Value(f) == "" {
				field = f
				break
			}
		}
		return &ValidationError{Field: field, Message: sel.missingMessage()}
	}
	for _, field := range form.BaseRequired() {
		if form.Value(field) == "" {
			return &ValidationError{
				Field:   field,
				Message: "Please fill in " + field.Human(),
			}
		}
	}
	return nil
}
