package letter

import "math"

// Progress процент заполненных обязательных полей, 0..100
func Progress(form Form) int {
	fields := RequiredFields(form)
	if len(fields) == 0 {
		return 0
	}
	filled := 0
	for _, field := range fields {
		if form.Value(field) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
