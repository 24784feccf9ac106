package misc

import (
	"github.com/gdrivehub/YTLinkerBot/internal/config"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/database"
	"github.com/gdrivehub/YTLinkerBot/internal/drivers/rdb"
)

type Service struct {
	config *config.Config
	db     database.Service
	rdb    *rdb.Service
}

func New(config *config.Config, db database.Service, rdb *rdb.Service) *Service {
	return &Service{
		config: config,
		db:     db,
		rdb:    rdb,
	}
}
