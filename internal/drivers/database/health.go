package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Health checks the health of the database connection.
// It returns a map with keys indicating various health statistics.
func (s *service) Health(ctx context.Context) map[string]any {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	stats := make(map[string]any)

	// Ping the database
	if err := s.db.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	// Database is up, add pool statistics
	stats["status"] = "up"

	dbStats := s.db.Stat()
	stats["maximum_possible_connections"] = dbStats.MaxConns()
	stats["current_open_connections"] = dbStats.TotalConns()
	stats["current_connections_in_use"] = dbStats.AcquiredConns()
	stats["current_idle_connections"] = dbStats.IdleConns()

	if dbStats.MaxConns() > 0 {
		utilization := float64(dbStats.AcquiredConns()) / float64(dbStats.MaxConns())
		stats["connection_pool_utilization"] = fmt.Sprintf("%.2f", utilization*100)

		if utilization > 0.85 {
			stats["message"] = fmt.Sprintf("Pool highly utilized: %.2f%%", utilization*100)
		}
	}

	return stats
}
