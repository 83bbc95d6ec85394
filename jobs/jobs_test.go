package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRollForward(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	next := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	rolled := RollForward(next, 8, now)
	assert.Equal(t, time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC), rolled)
}

func TestRollForward_ManyStepsBehind(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	next := now.Add(-50 * time.Hour)

	rolled := RollForward(next, 8, now)
	assert.True(t, rolled.After(now))
	assert.LessOrEqual(t, rolled.Sub(now), 8*time.Hour)
}

func TestRollForward_ZeroFrequency(t *testing.T) {
	now := time.Now()
	next := now.Add(-time.Hour)
	assert.Equal(t, next, RollForward(next, 0, now))
}

func TestAsTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got, ok := AsTime(now)
	require.True(t, ok)
	assert.Equal(t, now, got)

	got, ok = AsTime(primitive.NewDateTimeFromTime(now))
	require.True(t, ok)
	assert.True(t, got.Equal(now))

	_, ok = AsTime("not a time")
	assert.False(t, ok)
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 8, AsInt(8))
	assert.Equal(t, 8, AsInt(int32(8)))
	assert.Equal(t, 8, AsInt(int64(8)))
	assert.Equal(t, 8, AsInt(float64(8)))
	assert.Equal(t, 0, AsInt("8"))
}
