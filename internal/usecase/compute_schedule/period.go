package compute_schedule

import "time"

// planPeriod вычисляет последовательность календарных дней окна отображения:
// от сегодняшнего дня до конца горизонта в полных неделях, по одному дню
// без пропусков. Дни усечены до полуночи
//
// В воскресенье горизонт сокращается на одну неделю: неделя, оцениваемая
// в свой первый день, не показывается как "полная неделя вперед"
func planPeriod(today time.Time, horizonWeeks int) []time.Time {
	weekday := int(today.Weekday()) // 0 = воскресенье

	weeks := horizonWeeks
	if weekday == 0 {
		weeks--
	}

	totalDays := (6 - weekday) + 7*weeks
	if totalDays < 0 {
		totalDays = 0
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	days := make([]time.Time, 0, totalDays+1)
	for i := 0; i <= totalDays; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}

	return days
}
