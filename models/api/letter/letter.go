package letterapimodels

import (
	"strings"

	"leave-letter-backend/lib/letter"
	apimodels "leave-letter-backend/models/api"

	"github.com/pkg/errors"
)

// GeneralLetterData поля общего заявления
type GeneralLetterData struct {
	CompanyName    string `json:"company_name"`    // Название компании/организации
	UserName       string `json:"user_name"`       // ФИО заявителя
	Designation    string `json:"designation"`     // Должность
	Email          string `json:"email"`           // Почта заявителя
	Phone          string `json:"phone"`           // Телефон заявителя (необязательно)
	IsSingleDay    bool   `json:"is_single_day"`   // Отпуск на один день
	LeaveDate      string `json:"leave_date"`      // Дата отпуска, YYYY-MM-DD (для одного дня)
	StartDate      string `json:"start_date"`      // Начало периода, YYYY-MM-DD
	EndDate        string `json:"end_date"`        // Окончание периода, YYYY-MM-DD
	Reason         string `json:"reason"`          // Причина
	Template       string `json:"template"`        // Шаблон: formal/semi-formal
	Recipient      string `json:"recipient"`       // Адресат: hr/manager
	RecipientEmail string `json:"recipient_email"` // Почта адресата (необязательно)
}

func NewGeneralLetterData() GeneralLetterData {
	return GeneralLetterData{
		Template:  string(letter.TemplateFormal),
		Recipient: string(letter.RecipientHR),
	}
}

func (r GeneralLetterData) ToForm() letter.GeneralForm {
	return letter.GeneralForm{
		CompanyName:    r.CompanyName,
		UserName:       r.UserName,
		Designation:    r.Designation,
		Email:          r.Email,
		Phone:          r.Phone,
		Dates:          letter.NewDateSelection(r.IsSingleDay, r.LeaveDate, r.StartDate, r.EndDate),
		Reason:         r.Reason,
		Template:       letter.TemplateStyle(r.Template),
		Recipient:      letter.RecipientKind(r.Recipient),
		RecipientEmail: r.RecipientEmail,
	}
}

// InstitutionalLetterData поля институционального заявления
type InstitutionalLetterData struct {
	StudentName    string `json:"student_name"`    // ФИО студента
	Batch          string `json:"batch"`           // Группа/поток
	ManagerName    string `json:"manager_name"`    // Руководитель/координатор
	RecipientEmail string `json:"recipient_email"` // Почта адресата (необязательно)
	LeaveDate      string `json:"leave_date"`      // Дата отпуска, YYYY-MM-DD
	Reason         string `json:"reason"`          // Причина
}

func (r InstitutionalLetterData) ToForm() letter.InstitutionalForm {
	return letter.InstitutionalForm{
		StudentName:    r.StudentName,
		Batch:          r.Batch,
		ManagerName:    r.ManagerName,
		RecipientEmail: r.RecipientEmail,
		LeaveDate:      r.LeaveDate,
		Reason:         r.Reason,
	}
}

type ProgressView struct {
	Progress int `json:"progress"` // Процент заполнения обязательных полей
}

// GeneratedLetter результат генерации, передается на отображение
type GeneratedLetter struct {
	Letter         string `json:"letter"`
	RecipientEmail string `json:"recipient_email,omitempty"`
}

type ReasonSuggestionsView struct {
	General       []string `json:"general"`
	Institutional []string `json:"institutional"`
}

// LetterText тело запросов скачивания/печати/pdf
type LetterText struct {
	Letter string `json:"letter"` // Текст письма
}

func (r LetterText) Validate() error {
	if len(strings.TrimSpace(r.Letter)) == 0 {
		return errors.New("не указан текст письма")
	}
	return nil
}

type ShareView struct {
	URL       string `json:"url"`        // Ссылка на pdf
	ExpiresIn int64  `json:"expires_in"` // Время жизни ссылки, сек
}

// EmailRequest отправка письма адресату
type EmailRequest struct {
	Letter         string `json:"letter" validate:"required"`                 // Текст письма
	RecipientEmail string `json:"recipient_email" validate:"required,email"` // Почта адресата
	Subject        string `json:"subject"`                                    // Тема, по умолчанию "Leave Application"
	AttachPdf      bool   `json:"attach_pdf"`                                 // Приложить pdf
}

func (r EmailRequest) GetSubject() string {
	if strings.TrimSpace(r.Subject) == "" {
		return "Leave Application"
	}
	return r.Subject
}

func (r EmailRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DeliveryView struct {
	ID             string `json:"id"`
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type DeliveryFilter struct {
	apimodels.Pagination
}
