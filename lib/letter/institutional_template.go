package letter

import "fmt"

const institutionalSkeleton = `Subject: Leave Request for %[1]s on %[2]s

Dear %[3]s,

I hope this message finds you well. I would like to request leave on %[2]s due to %[1]s.

I will ensure that all my responsibilities are managed and, if needed, I'm happy to assist in planning or handing over any urgent tasks beforehand.

Thank you for your understanding and support.

Best regards,
%[4]s
%[5]s`

// RenderInstitutional заполняет фиксированный шаблон институционального заявления
func RenderInstitutional(form InstitutionalForm) string {
	return fmt.Sprintf(institutionalSkeleton,
		form.Reason,
		FormatLongDate(form.LeaveDate),
		form.ManagerName,
		form.StudentName,
		form.Batch,
	)
}
