package routingmodel

import (
	"testing"
	"time"

	"github.com/griffin-west/delivery-route-planner/internal/scenario"
	"github.com/stretchr/testify/assert"
)

func TestToStoreOptionsDefaultsTimeLimit(t *testing.T) {
	opts := toStoreOptions(scenario.Settings{})
	assert.Equal(t, defaultTimeLimit, opts.Limits.Duration)
	assert.Equal(t, 1, opts.Diagram.Expansion.Limit)
}

func TestToStoreOptionsHonorsConfiguredTimeLimit(t *testing.T) {
	limit := 42
	opts := toStoreOptions(scenario.Settings{SolverTimeLimitSeconds: &limit})
	assert.Equal(t, 42*time.Second, opts.Limits.Duration)
}
