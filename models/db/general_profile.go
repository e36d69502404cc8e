package dbmodels

import (
	profileapimodels "leave-letter-backend/models/api/profile"
)

type GeneralProfile struct {
	BaseModel
	UserID         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserName       string `gorm:"type:varchar(255)"`
	CompanyName    string `gorm:"type:varchar(255)"`
	Designation    string `gorm:"type:varchar(255)"`
	Email          string `gorm:"type:varchar(255)"`
	Phone          string `gorm:"type:varchar(32)"`
	RecipientEmail string `gorm:"type:varchar(255)"`
}

func (r GeneralProfile) ToModel() profileapimodels.GeneralProfile {
	return profileapimodels.GeneralProfile{
		UserName:       r.UserName,
		CompanyName:    r.CompanyName,
		Designation:    r.Designation,
		Email:          r.Email,
		Phone:          r.Phone,
		RecipientEmail: r.RecipientEmail,
	}
}

func NewGeneralProfile(userID string, data profileapimodels.GeneralProfile) GeneralProfile {
	return GeneralProfile{
		UserID:         userID,
		UserName:       data.UserName,
		CompanyName:    data.CompanyName,
		Designation:    data.Designation,
		Email:          data.Email,
		Phone:          data.Phone,
		RecipientEmail: data.RecipientEmail,
	}
}
