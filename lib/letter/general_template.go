package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type phraseSet struct {
	greeting string
	closing  string
}

var templatePhrases = map[TemplateStyle]phraseSet{
	TemplateFormal: {
		greeting: "Dear Sir/Madam,",
		closing:  "Yours sincerely,",
	},
	TemplateSemiFormal: {
		greeting: "Dear Team,",
		closing:  "Warm regards,",
	},
}

var recipientTitles = map[RecipientKind]string{
	RecipientHR:      "Human Resources Department",
	RecipientManager: "Manager",
}

func phrasesFor(style TemplateStyle) phraseSet {
	if p, ok := templatePhrases[style]; ok {
		return p
	}
	return templatePhrases[TemplateFormal]
}

func recipientTitle(kind RecipientKind) string {
	if kind == RecipientHR {
		return recipientTitles[RecipientHR]
	}
	return recipientTitles[RecipientManager]
}

// Engine генератор писем. Now используется для строки "Date:"
type Engine struct {
	Now func() time.Time
}

func NewEngine() Engine {
	return Engine{Now: time.Now}
}

func (e Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Render выбирает шаблон по виду формы
func (e Engine) Render(form Form) (string, error) {
	if form == nil {
		return "", errors.New("форма не задана")
	}
	switch f := form.(type) {
	case GeneralForm:
		return e.RenderGeneral(f), nil
	case *GeneralForm:
		return e.RenderGeneral(*f), nil
	case InstitutionalForm:
		return RenderInstitutional(f), nil
	case *InstitutionalForm:
		return RenderInstitutional(*f), nil
	}
	return "", errors.Errorf("неизвестный вид формы: %s", form.Kind())
}

func dateText(sel DateSelection) string {
	switch d := sel.(type) {
	case SingleDay:
		return "on " + FormatWeekdayDate(d.Date)
	case DateRange:
		return fmt.Sprintf("from %s to %s", FormatWeekdayDate(d.Start), FormatWeekdayDate(d.End))
	}
	return ""
}

func dayCountText(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func handoverParagraph(days int) string {
	if days > 1 {
		return fmt.Sprintf("During these %d days, I will hand over my ongoing responsibilities to my colleagues and share a detailed status update before I leave, so that work continues without interruption.", days)
	}
	return "I will complete my pending tasks for the day in advance or hand them over to a colleague, so that work continues without interruption."
}

// RenderGeneral заполняет параметризованный шаблон общего заявления
func (e Engine) RenderGeneral(form GeneralForm) string {
	phrases := phrasesFor(form.Template)
	sel := form.DateSelection()
	days := DayCount(sel)

	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n\n", e.now().Format(longDateLayout))
	fmt.Fprintf(&b, "To,\nThe %s\n%s\n\n", recipientTitle(form.Recipient), form.CompanyName)
	fmt.Fprintf(&b, "Subject: Application for Leave of Absence - %s\n\n", form.UserName)
	fmt.Fprintf(&b, "%s\n\n", phrases.greeting)
	fmt.Fprintf(&b, "I am writing to request leave %s (%s) due to %s. I am currently working as %s at %s.\n\n",
		dateText(sel), dayCountText(days), ExpandReason(form.Reason), form.Designation, form.CompanyName)
	fmt.Fprintf(&b, "%s\n\n", handoverParagraph(days))
	contact := form.Email
	if form.Phone != "" {
		contact = fmt.Sprintf("%s or %s", form.Email, form.Phone)
	}
	fmt.Fprintf(&b, "Should anything urgent come up, I can be reached at %s. I will resume my duties promptly upon my return.\n\n", contact)
	b.WriteString("Thank you for considering my request.\n\n")
	fmt.Fprintf(&b, "%s\n\n", phrases.closing)
	fmt.Fprintf(&b, "%s\n%s\nEmail: %s", form.UserName, form.Designation, form.Email)
	if form.Phone != "" {
		fmt.Fprintf(&b, "\nPhone: %s", form.Phone)
	}
	return b.String()
}
