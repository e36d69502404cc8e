package letter

import "strings"

// Field - имя поля формы, совпадает с именем в запросах и событиях изменения поля
type Field string

const (
	FieldCompanyName    Field = "company_name"
	FieldUserName       Field = "user_name"
	FieldDesignation    Field = "designation"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldIsSingleDay    Field = "is_single_day"
	FieldLeaveDate      Field = "leave_date"
	FieldStartDate      Field = "start_date"
	FieldEndDate        Field = "end_date"
	FieldReason         Field = "reason"
	FieldTemplate       Field = "template"
	FieldRecipient      Field = "recipient"
	FieldRecipientEmail Field = "recipient_email"
	FieldStudentName    Field = "student_name"
	FieldBatch          Field = "batch"
	FieldManagerName    Field = "manager_name"
)

// Human "company_name" -> "company name"
func (f Field) Human() string {
	return strings.ReplaceAll(string(f), "_", " ")
}

type FormKind string

const (
	KindGeneral       FormKind = "general"
	KindInstitutional FormKind = "institutional"
)

func (k FormKind) IsValid() bool {
	return k == KindGeneral || k == KindInstitutional
}

type TemplateStyle string

const (
	TemplateFormal     TemplateStyle = "formal"
	TemplateSemiFormal TemplateStyle = "semi-formal"
)

type RecipientKind string

const (
	RecipientHR      RecipientKind = "hr"
	RecipientManager RecipientKind = "manager"
)

// Form - снимок формы, с которым работают валидатор и калькулятор заполненности
type Form interface {
	Kind() FormKind
	Value(f Field) string
	// BaseRequired обязательные поля без учета дат, в порядке проверки
	BaseRequired() []Field
	DateSelection() DateSelection
}

var generalBaseRequired = []Field{FieldCompanyName, FieldUserName, FieldDesignation, FieldEmail, FieldReason}

var institutionalBaseRequired = []Field{FieldStudentName, FieldBatch, FieldManagerName, FieldReason}

type GeneralForm struct {
	CompanyName    string
	UserName       string
	Designation    string
	Email          string
	Phone          string
	Dates          DateSelection
	Reason         string
	Template       TemplateStyle
	Recipient      RecipientKind
	RecipientEmail string
}

// NewGeneralForm пустая форма с выбором по умолчанию: официальный шаблон, адресат HR, период дат
func NewGeneralForm() GeneralForm {
	return GeneralForm{
		Dates:     DateRange{},
		Template:  TemplateFormal,
		Recipient: RecipientHR,
	}
}

func (f GeneralForm) Kind() FormKind {
	return KindGeneral
}

func (f GeneralForm) BaseRequired() []Field {
	return generalBaseRequired
}

func (f GeneralForm) DateSelection() DateSelection {
	if f.Dates == nil {
		return DateRange{}
	}
	return f.Dates
}

func (f GeneralForm) Value(field Field) string {
	switch field {
	case FieldCompanyName:
		return f.CompanyName
	case FieldUserName:
		return f.UserName
	case FieldDesignation:
		return f.Designation
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldReason:
		return f.Reason
	case FieldTemplate:
		return string(f.Template)
	case FieldRecipient:
		return string(f.Recipient)
	case FieldRecipientEmail:
		return f.RecipientEmail
	}
	return dateValue(f.DateSelection(), field)
}

type InstitutionalForm struct {
	StudentName    string
	Batch          string
	ManagerName    string
	RecipientEmail string
	LeaveDate      string
	Reason         string
}

func (f InstitutionalForm) Kind() FormKind {
	return KindInstitutional
}

func (f InstitutionalForm) BaseRequired() []Field {
	return institutionalBaseRequired
}

// DateSelection институциональное заявление всегда на один день
func (f InstitutionalForm) DateSelection() DateSelection {
	return SingleDay{Date: f.LeaveDate}
}

func (f InstitutionalForm) Value(field Field) string {
	switch field {
	case FieldStudentName:
		return f.StudentName
	case FieldBatch:
		return f.Batch
	case FieldManagerName:
		return f.ManagerName
	case FieldRecipientEmail:
		return f.RecipientEmail
	case FieldReason:
		return f.Reason
	}
	return dateValue(f.DateSelection(), field)
}

func dateValue(sel DateSelection, field Field) string {
	switch d := sel.(type) {
	case SingleDay:
		if field == FieldLeaveDate {
			return d.Date
		}
	case DateRange:
		switch field {
		case FieldStartDate:
			return d.Start
		case FieldEndDate:
			return d.End
		}
	}
	return ""
}

// RequiredFields полный набор обязательных полей: базовый набор и поля дат выбранного режима
func RequiredFields(form Form) []Field {
	base := form.BaseRequired()
	dates := form.DateSelection().RequiredFields()
	fields := make([]Field, 0, len(base)+len(dates))
	fields = append(fields, base...)
	return append(fields, dates...)
}
