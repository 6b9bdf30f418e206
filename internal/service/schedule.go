package service

import (
	"math"
	"time"

	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/domain"
	"github.com/hdcongo61-sudo/HDMarket-sub003/internal/utils/money"
)

// Шаг графика примерно месячный: длительность делится на отрезки по 30 дней
const scheduleStepDays = 30

// GenerateSchedule строит график взносов по остатку долга.
// Арифметика ведется в центах: базовый шаг — целая часть деления, последний
// взнос забирает остаток округления, поэтому сумма взносов всегда в точности
// равна remainingAmount. Даты платежей не убывают и не выходят за durationDays.
func GenerateSchedule(remainingAmount float64, durationDays int, firstPaymentDate time.Time) []domain.Tranche {
	if remainingAmount <= 0 || durationDays <= 0 {
		return nil
	}

	steps := (durationDays + scheduleStepDays - 1) / scheduleStepDays
	if steps < 1 {
		steps = 1
	}

	remainingCents := money.Cents(remainingAmount)
	baseStepCents := remainingCents / int64(steps)

	tranches := make([]domain.Tranche, 0, steps)
	var consumed int64
	for i := 0; i < steps; i++ {
		stepCents := baseStepCents
		if i == steps-1 {
			stepCents = remainingCents - consumed
		}
		consumed += stepCents

		offsetDays := int(math.Round(float64((i+1)*durationDays) / float64(steps)))
		if offsetDays < 1 {
			offsetDays = 1
		}

		tranches = append(tranches, domain.Tranche{
			DueDate:       firstPaymentDate.AddDate(0, 0, offsetDays),
			Amount:        money.FromCents(stepCents),
			Status:        domain.TrancheStatusPending,
			PenaltyAmount: 0,
		})
	}

	return tranches
}
