package models

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "SENT"
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

var deliveryStatusHuman = map[DeliveryStatus]string{
	DeliveryStatusSent:   "Отправлено",
	DeliveryStatusFailed: "Ошибка отправки",
}

func (s DeliveryStatus) ToHuman() string {
	if human, exist := deliveryStatusHuman[s]; exist {
		return human
	}
	return string(s)
}
