package usecase

import (
	"time"

	"editora_prisma/internal/domain/entities"
)

const (
	defaultDueDay  = 10
	lumpSumDueDays = 30
)

// BuildSchedule computes an order's payment schedule from a quote total and
// its payment plan. Pure and deterministic given now.
//
// Lump sum (nil plan or installments <= 1): a single entry worth the full
// total, due 30 days from now.
//
// Installments: total split equally across all entries (the division
// remainder is NOT absorbed anywhere; the schedule sum may differ from the
// total by a fraction of a cent). Entry i (0-based) is due on the plan's due
// day, i months from the current month. time.Date normalizes overflow, so a
// due day of 31 in a 30-day month rolls into the following month.
func BuildSchedule(total float64, plan *entities.PaymentPlan, now time.Time) []entities.ScheduleEntry {
	now = now.UTC()

	if plan == nil || plan.Installments <= 1 {
		return []entities.ScheduleEntry{{
			Installment: 1,
			Value:       total,
			DueDate:     now.AddDate(0, 0, lumpSumDueDays),
			Status:      entities.InstallmentStatusPendente,
		}}
	}

	dueDay := plan.DueDay
	if dueDay <= 0 {
		dueDay = defaultDueDay
	}

	value := total / float64(plan.Installments)
	entries := make([]entities.ScheduleEntry, 0, plan.Installments)
	for i := 0; i < plan.Installments; i++ {
		due := time.Date(now.Year(), now.Month()+time.Month(i), dueDay, 0, 0, 0, 0, time.UTC)
		entries = append(entries, entities.ScheduleEntry{
			Installment: i + 1,
			Value:       value,
			DueDate:     due,
			Status:      entities.InstallmentStatusPendente,
		})
	}
	return entries
}
