package dbmodels

import (
	profileapimodels "leave-letter-backend/models/api/profile"
)

type InstitutionalProfile struct {
	BaseModel
	UserID         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	StudentName    string `gorm:"type:varchar(255)"`
	Batch          string `gorm:"type:varchar(100)"`
	ManagerName    string `gorm:"type:varchar(255)"`
	RecipientEmail string `gorm:"type:varchar(255)"`
}

func (r InstitutionalProfile) ToModel() profileapimodels.InstitutionalProfile {
	return profileapimodels.InstitutionalProfile{
		StudentName:    r.StudentName,
		Batch:          r.Batch,
		ManagerName:    r.ManagerName,
		RecipientEmail: r.RecipientEmail,
	}
}

func NewInstitutionalProfile(userID string, data profileapimodels.InstitutionalProfile) InstitutionalProfile {
	return InstitutionalProfile{
		UserID:         userID,
		StudentName:    data.StudentName,
		Batch:          data.Batch,
		ManagerName:    data.ManagerName,
		RecipientEmail: data.RecipientEmail,
	}
}
