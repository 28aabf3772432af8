package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"digaxy-assistant/config"
	"digaxy-assistant/pkg/log"
)

// limiterIdleTTL is how long a client's limiter survives without traffic
// before it is evicted and its budget forgotten.
const limiterIdleTTL = 10 * time.Minute

const maxTrackedClients = 10000

type Middleware struct {
	l        log.Logger
	perMin   int
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:        l,
		perMin:   cfg.PerMin,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterIdleTTL),
	}
}
