package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects to the configured store and applies the pool settings.
// The returned handle is the only connection object in the process; callers
// pass it explicitly to whatever needs it.
func Open(cfg config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	utils.InfoLogger.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteParams are forced onto every SQLite DSN unless the caller already
// set them. Foreign keys are off in SQLite by default. Immediate transactions
// take the write lock at BEGIN, so concurrent writers wait out the busy
// timeout instead of failing with "database is locked" mid-transaction.
var sqliteParams = []struct {
	key     string
	value   string
	aliases []string
}{
	{key: "_foreign_keys", value: "on", aliases: []string{"_fk"}},
	{key: "_txlock", value: "immediate"},
	{key: "_busy_timeout", value: "5000", aliases: []string{"_timeout"}},
}

// SQLiteDSN adds the connection options every pooled SQLite connection needs.
func SQLiteDSN(dsn string) string {
	present := map[string]bool{}
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		for _, pair := range strings.Split(dsn[i+1:], "&") {
			key, _, _ := strings.Cut(pair, "=")
			present[key] = true
		}
	}

	for _, p := range sqliteParams {
		if present[p.key] {
			continue
		}
		set := false
		for _, alias := range p.aliases {
			set = set || present[alias]
		}
		if set {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.key + "=" + p.value
	}
	return dsn
}

func newGormLogger() logger.Interface {
	return logger.New(utils.InfoLogger, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
