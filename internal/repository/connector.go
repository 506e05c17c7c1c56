package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
	"github.com/johncrouse123/cloud-portfolio/internal/secrets"
	pkgconfig "github.com/johncrouse123/cloud-portfolio/pkg/config"
)

const connectTimeout = 5 * time.Second

// Connector opens a relational connection. One physical connection is
// opened and torn down per checkout invocation; there is no pooling,
// no retry, no backoff.
type Connector interface {
	Open(ctx context.Context) (*sql.DB, error)
}

// MySQLConnector dials RDS with credentials resolved through the
// secrets cache.
type MySQLConnector struct {
	host          string
	database      string
	usernameParam string
	passwordParam string
	secrets       *secrets.Cache
	logger        *zap.Logger
}

func NewMySQLConnector(cfg *pkgconfig.Config, cache *secrets.Cache, logger *zap.Logger) *MySQLConnector {
	return &MySQLConnector{
		host:          cfg.RDSHost,
		database:      cfg.RDSDatabase,
		usernameParam: cfg.DBUsernameParam,
		passwordParam: cfg.DBPasswordParam,
		secrets:       cache,
		logger:        logger,
	}
}

func (c *MySQLConnector) Open(ctx context.Context) (*sql.DB, error) {
	user, err := c.secrets.Resolve(ctx, c.usernameParam)
	if err != nil {
		return nil, &domain.ConnectionError{Err: err}
	}
	password, err := c.secrets.Resolve(ctx, c.passwordParam)
	if err != nil {
		return nil, &domain.ConnectionError{Err: err}
	}

	mc := mysql.NewConfig()
	mc.User = user
	mc.Passwd = password
	mc.Net = "tcp"
	mc.Addr = c.host
	mc.DBName = c.database
	mc.Timeout = connectTimeout

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, &domain.ConnectionError{Err: err}
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		c.logger.Error("RDS connection failed", zap.Error(err))
		return nil, &domain.ConnectionError{Err: err}
	}

	c.logger.Info("RDS connection established")
	return db, nil
}
