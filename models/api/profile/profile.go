package profileapimodels

import (
	apimodels "leave-letter-backend/models/api"
)

// InstitutionalProfile данные для автозаполнения институционального заявления
type InstitutionalProfile struct {
	StudentName    string `json:"student_name"`
	Batch          string `json:"batch"`
	ManagerName    string `json:"manager_name"`
	RecipientEmail string `json:"recipient_email" validate:"omitempty,email"`
}

// GeneralProfile данные для автозаполнения общего заявления
type GeneralProfile struct {
	UserName       string `json:"user_name"`
	CompanyName    string `json:"company_name"`
	Designation    string `json:"designation"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,max=32"`
	RecipientEmail string `json:"recipient_email" validate:"omitempty,email"`
}

// ProfilesView профили пользователя, отсутствующий профиль - null
type ProfilesView struct {
	Institutional *InstitutionalProfile `json:"institutional"`
	General       *GeneralProfile       `json:"general"`
}

func (r InstitutionalProfile) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r GeneralProfile) Validate() error {
	return apimodels.ValidateStruct(r)
}
