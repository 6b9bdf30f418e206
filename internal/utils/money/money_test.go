package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	assert.Equal(t, int64(4500000), Cents(45000))
	assert.Equal(t, int64(10001), Cents(100.01))
	assert.Equal(t, int64(3), Cents(0.03))
	// 0.1+0.2 в float64 не равно 0.3, но в центах совпадает
	assert.Equal(t, Cents(0.3), Cents(0.1+0.2))
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 100.01, FromCents(10001))
	assert.Equal(t, 0.0, FromCents(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1125.0, Round2(22500*5.0/100))
	assert.Equal(t, 0.33, Round2(1.0/3))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(0.3, 0.1+0.2))
	assert.False(t, Equal(0.31, 0.3))
}
