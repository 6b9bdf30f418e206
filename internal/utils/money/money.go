package money

import "math"

// Cents переводит денежную сумму в минорные единицы.
// Вся арифметика графика ведется в центах, чтобы суммы взносов
// сходились без плавающего дрейфа.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents переводит минорные единицы обратно в денежную сумму
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Round2 округляет сумму до двух знаков
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Equal сравнивает две суммы с точностью до цента
func Equal(a, b float64) bool {
	return Cents(a) == Cents(b)
}
