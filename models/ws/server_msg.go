package wsmodels

type EventCode string

const (
	EventProgress    EventCode = "progress"
	EventLetterReady EventCode = "letter_ready"
	EventNotice      EventCode = "notice"
)

type ServerMessage struct {
	ToSessionID string    `json:"-"`
	Time        string    `json:"time"`               // время события
	Code        EventCode `json:"code"`               // код события
	Progress    int       `json:"progress,omitempty"` // прогресс генерации, %
	Msg         string    `json:"msg,omitempty"`      // текст события
}
