package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRoutingConfig(t *testing.T) {
	rc := DefaultRoutingConfig()

	assert.Equal(t, float64(DefaultNodeSearchRadius), rc.NodeSearchRadius)
	assert.Equal(t, DefaultBBoxMargin, rc.BBoxMargin)
	assert.Equal(t, float64(DefaultBBoxRetryFactor), rc.BBoxRetryFactor)
	assert.Equal(t, DefaultBBoxMaxRetries, rc.BBoxMaxRetries)
	assert.Equal(t, DefaultMergeBBoxMargin, rc.MergeBBoxMargin)
	assert.Equal(t, DefaultRequestTimeout, rc.RequestTimeout)
}

func TestRoutingConfig_KeepsExplicitValues(t *testing.T) {
	rc := RoutingConfig{
		NodeSearchRadius: 250,
		BBoxMargin:       0.05,
		BBoxRetryFactor:  2,
		BBoxMaxRetries:   -1,
	}
	rc.applyDefaults()

	assert.Equal(t, 250.0, rc.NodeSearchRadius)
	assert.Equal(t, 0.05, rc.BBoxMargin)
	assert.Equal(t, 2.0, rc.BBoxRetryFactor)
	assert.Equal(t, 0, rc.BBoxMaxRetries, "negative retries disable the retry")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}

	assert.Equal(t, "cache:6380", cfg.Addr())
}
