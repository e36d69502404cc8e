package letter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completeGeneral() GeneralForm {
	form := NewGeneralForm()
	form.CompanyName = "Acme"
	form.UserName = "Jane Doe"
	form.Designation = "Engineer"
	form.Email = "jane@acme.io"
	form.Reason = "Fever"
	form.Dates = DateRange{Start: "2025-06-01", End: "2025-06-03"}
	return form
}

func completeInstitutional() InstitutionalForm {
	return InstitutionalForm{
		StudentName: "Ada",
		Batch:       "B12",
		ManagerName: "Mr. Lee",
		LeaveDate:   "2025-03-10",
		Reason:      "medical appointment",
	}
}

func requireValidationError(t *testing.T, err error, field Field, msg string) {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Equal(t, field, verr.Field)
	require.Equal(t, msg, verr.Message)
}

func TestValidate(t *testing.T) {
	t.Run(`complete forms pass`, func(t *testing.T) {
		require.NoError(t, Validate(completeGeneral()))
		require.NoError(t, Validate(completeInstitutional()))

		single := completeGeneral()
		single.Dates = SingleDay{Date: "2025-07-04"}
		require.NoError(t, Validate(single))
	})

	t.Run(`single day without date`, func(t *testing.T) {
		form := completeGeneral()
		form.Dates = SingleDay{}
		requireValidationError(t, Validate(form), FieldLeaveDate, "Please select a leave date")
	})

	t.Run(`range without end date`, func(t *testing.T) {
		form := completeGeneral()
		form.Dates = DateRange{Start: "2025-06-01"}
		requireValidationError(t, Validate(form), FieldEndDate, "Please select start and end dates")
	})

	t.Run(`date rule is checked before base fields`, func(t *testing.T) {
		form := NewGeneralForm()
		requireValidationError(t, Validate(form), FieldStartDate, "Please select start and end dates")

		inst := InstitutionalForm{}
		requireValidationError(t, Validate(inst), FieldLeaveDate, "Please select a leave date")
	})

	t.Run(`every missing general field is named`, func(t *testing.T) {
		for _, field := range generalBaseRequired {
			form := completeGeneral()
			switch field {
			case FieldCompanyName:
				form.CompanyName = ""
			case FieldUserName:
				form.UserName = ""
			case FieldDesignation:
				form.Designation = ""
			case FieldEmail:
				form.Email = ""
			case FieldReason:
				form.Reason = ""
			}
			requireValidationError(t, Validate(form), field, "Please fill in "+field.Human())
		}
	})

	t.Run(`every missing institutional field is named`, func(t *testing.T) {
		for _, field := range institutionalBaseRequired {
			form := completeInstitutional()
			switch field {
			case FieldStudentName:
				form.StudentName = ""
			case FieldBatch:
				form.Batch = ""
			case FieldManagerName:
				form.ManagerName = ""
			case FieldReason:
				form.Reason = ""
			}
			requireValidationError(t, Validate(form), field, "Please fill in "+field.Human())
		}
	})

	t.Run(`first missing field wins`, func(t *testing.T) {
		form := completeGeneral()
		form.UserName = ""
		form.Reason = ""
		requireValidationError(t, Validate(form), FieldUserName, "Please fill in user name")
	})

	t.Run(`phone is optional`, func(t *testing.T) {
		form := completeGeneral()
		form.Phone = ""
		require.NoError(t, Validate(form))
	})
}
