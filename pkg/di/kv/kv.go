package kv_di

import (
	"time"

	"github.com/lintang-b-s/gps-heatmap/pkg/di/config"
	"github.com/lintang-b-s/gps-heatmap/pkg/kvdb"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger) (*kvdb.KVDB, func(), error) {
	db, err := bolt.Open(cfg.DBPath, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}

	bboltKV := kvdb.NewKVDB(db)
	if err := bboltKV.Init(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := bboltKV.Close(); err != nil {
			log.Warn("failed to close track store", zap.Error(err))
		}
	}

	return bboltKV, cleanup, nil
}
