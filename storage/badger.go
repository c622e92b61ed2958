package storage

import (
	"time"

	"github.com/MixinNetwork/ratio/config"
	"github.com/MixinNetwork/ratio/logger"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom  *config.Custom
	valueDB *badger.DB
	closing chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	closing := make(chan struct{})
	valueDB, err := openDB(dir+"/values", true, custom, closing)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{
		custom:  custom,
		valueDB: valueDB,
		closing: closing,
	}, nil
}

func (s *BadgerStore) Close() error {
	select {
	case <-s.closing:
		return nil
	default:
		close(s.closing)
	}
	return s.valueDB.Close()
}

func openDB(dir string, sync bool, custom *config.Custom, closing chan struct{}) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithSyncWrites(sync)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithBaseLevelSize(16 << 20)
	if custom != nil {
		opts = opts.WithMaxLevels(custom.Storage.MaxCompactionLevels)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if custom != nil && custom.Storage.ValueLogGC {
		go runValueLogGC(db, closing)
	}

	return db, nil
}

func runValueLogGC(db *badger.DB, closing chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-closing:
			return
		case <-ticker.C:
		}
		lsm, vlog := db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := db.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
	}
}
