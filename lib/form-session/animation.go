package formsession

import "time"

// Animation косметическая анимация генерации: прогресс растет на Step каждые Interval
// (не выше 90), по истечении Duration выставляется 100. На результат не влияет.
type Animation struct {
	Step     int
	Interval time.Duration
	Duration time.Duration
}

const animationCap = 90

var (
	GeneralAnimation = Animation{
		Step:     10,
		Interval: 200 * time.Millisecond,
		Duration: 2 * time.Second,
	}
	InstitutionalAnimation = Animation{
		Step:     20,
		Interval: 150 * time.Millisecond,
		Duration: 1200 * time.Millisecond,
	}
)

// Run блокирует на Duration и сообщает каждое значение прогресса в report
func (a Animation) Run(report func(progress int)) {
	report(0)
	if a.Duration <= 0 {
		report(100)
		return
	}
	done := time.NewTimer(a.Duration)
	defer done.Stop()

	var tick <-chan time.Time
	if a.Interval > 0 && a.Step > 0 {
		ticker := time.NewTicker(a.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	progress := 0
	for {
		select {
		case <-tick:
			progress = min(progress+a.Step, animationCap)
			report(progress)
		case <-done.C:
			report(100)
			return
		}
	}
}
