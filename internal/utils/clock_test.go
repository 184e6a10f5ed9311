package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock_TodayDropsTimeOfDay(t *testing.T) {
	clock := &MockClock{FixedNow: time.Date(2024, time.June, 20, 15, 4, 5, 123, time.UTC)}

	assert.Equal(t, time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), clock.Today())
	assert.Equal(t, time.Date(2024, time.June, 20, 15, 4, 5, 123, time.UTC), clock.Now())
}

func TestMockClock_SetNowMovesToday(t *testing.T) {
	clock := &MockClock{FixedNow: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)}

	clock.SetNow(time.Date(2024, time.September, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), clock.Today())
}

func TestSystemClock_TodayIsMidnight(t *testing.T) {
	today := SystemClock{}.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
	assert.Equal(t, 0, today.Nanosecond())
}
