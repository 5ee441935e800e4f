package http

import (
	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/infrastructure/config"
	"github.com/hireloop/hireloop/internal/shared/logger"

	_ "github.com/hireloop/hireloop/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}
