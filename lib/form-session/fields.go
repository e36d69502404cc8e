package formsession

import (
	"strconv"

	formsessionstore "leave-letter-backend/lib/form-session/store"
	"leave-letter-backend/lib/letter"
	letterapimodels "leave-letter-backend/models/api/letter"
	profileapimodels "leave-letter-backend/models/api/profile"
	sessionapimodels "leave-letter-backend/models/api/session"

	"github.com/pkg/errors"
)

func newBlankSession(id, userID string, kind letter.FormKind) formsessionstore.Session {
	sess := formsessionstore.Session{
		ID:     id,
		UserID: userID,
		Kind:   kind,
	}
	resetFields(&sess)
	return sess
}

// resetFields заменяет поля формы пустыми целиком
func resetFields(sess *formsessionstore.Session) {
	sess.General = nil
	sess.Institutional = nil
	switch sess.Kind {
	case letter.KindGeneral:
		data := letterapimodels.NewGeneralLetterData()
		sess.General = &data
	case letter.KindInstitutional:
		sess.Institutional = &letterapimodels.InstitutionalLetterData{}
	}
}

func sessionForm(sess formsessionstore.Session) (letter.Form, error) {
	switch {
	case sess.Kind == letter.KindGeneral && sess.General != nil:
		return sess.General.ToForm(), nil
	case sess.Kind == letter.KindInstitutional && sess.Institutional != nil:
		return sess.Institutional.ToForm(), nil
	}
	return nil, ErrUnknownKind
}

func recipientEmail(sess formsessionstore.Session) string {
	switch {
	case sess.General != nil:
		return sess.General.RecipientEmail
	case sess.Institutional != nil:
		return sess.Institutional.RecipientEmail
	}
	return ""
}

func setField(sess *formsessionstore.Session, field letter.Field, value string) error {
	switch sess.Kind {
	case letter.KindGeneral:
		if sess.General == nil {
			return ErrUnknownKind
		}
		return setGeneralField(sess.General, field, value)
	case letter.KindInstitutional:
		if sess.Institutional == nil {
			return ErrUnknownKind
		}
		return setInstitutionalField(sess.Institutional, field, value)
	}
	return ErrUnknownKind
}

func setGeneralField(data *letterapimodels.GeneralLetterData, field letter.Field, value string) error {
	switch field {
	case letter.FieldCompanyName:
		data.CompanyName = value
	case letter.FieldUserName:
		data.UserName = value
	case letter.FieldDesignation:
		data.Designation = value
	case letter.FieldEmail:
		data.Email = value
	case letter.FieldPhone:
		data.Phone = value
	case letter.FieldIsSingleDay:
		isSingleDay, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(ErrInvalidFieldValue, "%s: %q", field, value)
		}
		data.IsSingleDay = isSingleDay
	case letter.FieldLeaveDate:
		data.LeaveDate = value
	case letter.FieldStartDate:
		data.StartDate = value
	case letter.FieldEndDate:
		data.EndDate = value
	case letter.FieldReason:
		data.Reason = value
	case letter.FieldTemplate:
		if value != string(letter.TemplateFormal) && value != string(letter.TemplateSemiFormal) {
			return errors.Wrapf(ErrInvalidFieldValue, "%s: %q", field, value)
		}
		data.Template = value
	case letter.FieldRecipient:
		if value != string(letter.RecipientHR) && value != string(letter.RecipientManager) {
			return errors.Wrapf(ErrInvalidFieldValue, "%s: %q", field, value)
		}
		data.Recipient = value
	case letter.FieldRecipientEmail:
		data.RecipientEmail = value
	default:
		return errors.Wrapf(ErrUnknownField, "%s", field)
	}
	return nil
}

func setInstitutionalField(data *letterapimodels.InstitutionalLetterData, field letter.Field, value string) error {
	switch field {
	case letter.FieldStudentName:
		data.StudentName = value
	case letter.FieldBatch:
		data.Batch = value
	case letter.FieldManagerName:
		data.ManagerName = value
	case letter.FieldRecipientEmail:
		data.RecipientEmail = value
	case letter.FieldLeaveDate:
		data.LeaveDate = value
	case letter.FieldReason:
		data.Reason = value
	default:
		return errors.Wrapf(ErrUnknownField, "%s", field)
	}
	return nil
}

// applyProfiles переносит непустые значения профиля в поля формы.
// Возвращает true, если профиль для вида формы найден
func applyProfiles(sess *formsessionstore.Session, profiles profileapimodels.ProfilesView, email string) bool {
	switch {
	case sess.General != nil:
		p := profiles.General
		if p == nil {
			overwrite(&sess.General.Email, email)
			return false
		}
		overwrite(&sess.General.UserName, p.UserName)
		overwrite(&sess.General.CompanyName, p.CompanyName)
		overwrite(&sess.General.Designation, p.Designation)
		overwrite(&sess.General.Email, p.Email)
		overwrite(&sess.General.Phone, p.Phone)
		overwrite(&sess.General.RecipientEmail, p.RecipientEmail)
		return true
	case sess.Institutional != nil:
		p := profiles.Institutional
		if p == nil {
			return false
		}
		overwrite(&sess.Institutional.StudentName, p.StudentName)
		overwrite(&sess.Institutional.Batch, p.Batch)
		overwrite(&sess.Institutional.ManagerName, p.ManagerName)
		overwrite(&sess.Institutional.RecipientEmail, p.RecipientEmail)
		return true
	}
	return false
}

func overwrite(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func toView(sess formsessionstore.Session) sessionapimodels.SessionView {
	view := sessionapimodels.SessionView{
		ID:            sess.ID,
		Kind:          string(sess.Kind),
		General:       sess.General,
		Institutional: sess.Institutional,
		ProfileLoaded: sess.ProfileLoaded,
		Notice:        sess.Notice,
		Generating:    sess.Generating,
		Letter:        sess.Letter,
	}
	if form, err := sessionForm(sess); err == nil {
		view.Progress = letter.Progress(form)
	}
	return view
}
