package httpclient

import (
	"studio-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.FailureThreshold)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.FailureThreshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(cfg.Timeout, cfg.FailureThreshold, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, _ interface{}) *circuit.Breaker {
		return cb
	}
	return client
}
