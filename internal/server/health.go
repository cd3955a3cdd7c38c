package server

import (
	"catalog/pkg/envelope"
	"catalog/pkg/httperror"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
	GetPoolStats() map[string]interface{}
}

// BrokerChecker is implemented by event publishers that hold a broker connection.
type BrokerChecker interface {
	IsHealthy() bool
}

// healthHandler fails only on the database. The broker is reported but events
// are best-effort, so a lost connection does not make the service unhealthy.
func healthHandler(db HealthChecker, broker BrokerChecker, service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			zap.L().Error("Database ping failed", zap.Error(err))
			return httperror.ServiceUnavailable("health.database_unavailable", "Database unavailable", nil)
		}

		body := fiber.Map{
			"status":   "healthy",
			"service":  service,
			"database": db.GetPoolStats(),
		}
		if broker != nil {
			body["broker"] = brokerStatus(broker.IsHealthy())
		}

		return c.JSON(envelope.Success(body))
	}
}

func brokerStatus(healthy bool) string {
	if healthy {
		return "connected"
	}
	zap.L().Warn("Event broker connection is down")
	return "disconnected"
}
