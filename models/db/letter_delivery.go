package dbmodels

import (
	"leave-letter-backend/models"
	letterapimodels "leave-letter-backend/models/api/letter"
)

// LetterDelivery журнал отправки писем по почте
type LetterDelivery struct {
	BaseModel
	UserID         string                `gorm:"type:varchar(255);index"`
	RecipientEmail string                `gorm:"type:varchar(255)"`
	Subject        string                `gorm:"type:varchar(255)"`
	Letter         string                `gorm:"type:text"`
	Status         models.DeliveryStatus `gorm:"type:varchar(50)"`
	Error          string                `gorm:"type:text"`
}

func (r LetterDelivery) ToModel() letterapimodels.DeliveryView {
	return letterapimodels.DeliveryView{
		ID:             r.ID,
		RecipientEmail: r.RecipientEmail,
		Subject:        r.Subject,
		Status:         r.Status.ToHuman(),
		Error:          r.Error,
		CreatedAt:      r.CreatedAt.Format("02.01.2006 15:04:05"),
	}
}
