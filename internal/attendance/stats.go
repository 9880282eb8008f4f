package attendance

import "time"

type Summary struct {
	TotalSessions int `json:"total_sessions"`
	Present       int `json:"present"`
	Completed     int `json:"completed"`

	TotalDurationSeconds int64  `json:"total_duration_seconds"`
	TotalDuration        string `json:"total_duration"`

	// mean over every positive completed session
	AverageDurationSeconds int64  `json:"average_duration_seconds"`
	AverageDuration        string `json:"average_duration"`

	// each employee's own mean, summed; kept for the legacy dashboard figure
	SumOfEmployeeAveragesSeconds int64  `json:"sum_of_employee_averages_seconds"`
	SumOfEmployeeAverages        string `json:"sum_of_employee_averages"`
}

// Summarize counts presence and completion and aggregates worked time.
// Only positive durations of complete sessions contribute to the totals.
func Summarize(sessions []Session) Summary {
	var (
		summary Summary
		total   time.Duration
		counted int
	)

	type acc struct {
		sum   time.Duration
		count int
	}
	perEmployee := make(map[int64]*acc)
	var order []int64

	for _, s := range sessions {
		summary.TotalSessions++
		if s.HasEntry() {
			summary.Present++
		}
		if s.IsComplete() {
			summary.Completed++
		}

		d, ok := s.Worked()
		if !ok {
			continue
		}
		total += d
		counted++

		a, seen := perEmployee[s.EmployeeID]
		if !seen {
			a = &acc{}
			perEmployee[s.EmployeeID] = a
			order = append(order, s.EmployeeID)
		}
		a.sum += d
		a.count++
	}

	summary.TotalDurationSeconds = seconds(total)
	summary.TotalDuration = FormatDuration(total)

	if counted > 0 {
		avg := total / time.Duration(counted)
		summary.AverageDurationSeconds = seconds(avg)
		summary.AverageDuration = FormatDuration(avg)
	} else {
		summary.AverageDuration = DurationUnavailable
	}

	var sumOfAverages time.Duration
	for _, id := range order {
		a := perEmployee[id]
		sumOfAverages += a.sum / time.Duration(a.count)
	}
	if len(order) > 0 {
		summary.SumOfEmployeeAveragesSeconds = seconds(sumOfAverages)
		summary.SumOfEmployeeAverages = FormatDuration(sumOfAverages)
	} else {
		summary.SumOfEmployeeAverages = DurationUnavailable
	}

	return summary
}

// TotalWorked sums the positive durations of complete sessions.
func TotalWorked(sessions []Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		if d, ok := s.Worked(); ok {
			total += d
		}
	}
	return total
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
