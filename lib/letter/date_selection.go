package letter

// DateSelection - выбор дат отпуска: SingleDay или DateRange
type DateSelection interface {
	RequiredFields() []Field
	// missingMessage текст ошибки, если даты выбранного режима не заполнены
	missingMessage() string
	isComplete() bool
}

type SingleDay struct {
	Date string
}

func (d SingleDay) RequiredFields() []Field {
	return []Field{FieldLeaveDate}
}

func (d SingleDay) missingMessage() string {
	return "Please select a leave date"
}

func (d SingleDay) isComplete() bool {
	return d.Date != ""
}

type DateRange struct {
	Start string
	End   string
}

func (d DateRange) RequiredFields() []Field {
	return []Field{FieldStartDate, FieldEndDate}
}

func (d DateRange) missingMessage() string {
	return "Please select start and end dates"
}

func (d DateRange) isComplete() bool {
	return d.Start != "" && d.End != ""
}

// NewDateSelection собирает выбор дат из плоских полей формы
func NewDateSelection(isSingleDay bool, leaveDate, startDate, endDate string) DateSelection {
	if isSingleDay {
		return SingleDay{Date: leaveDate}
	}
	return DateRange{Start: startDate, End: endDate}
}
