// Package progress computes derived reading metrics for book records.
package progress

import "github.com/mrlokans/booktracer/internal/entities"

// PercentComplete returns how much of a book has been read, in percent.
// Books without a known page count report 0. Values above 100 are not
// clamped; a current page beyond the total is surfaced rather than hidden.
func PercentComplete(b entities.Book) float64 {
	if b.TotalPages <= 0 {
		return 0.0
	}
	return 100.0 * float64(b.CurrentPage) / float64(b.TotalPages)
}

// DaysToFinish estimates the days left to finish the book at dailyRate pages
// per day, rounding up. ok is false when the rate is unset or the book has
// no pages remaining.
func DaysToFinish(b entities.Book, dailyRate int) (days int, ok bool) {
	if dailyRate <= 0 || b.CurrentPage >= b.TotalPages {
		return 0, false
	}
	remaining := b.TotalPages - b.CurrentPage
	return (remaining + dailyRate - 1) / dailyRate, true
}
