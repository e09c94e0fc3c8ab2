package store

import (
	"encoding/json"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

var stateBucket = []byte("coldflow")

// Storage keys, carried over verbatim from the original dashboard
// profile so an exported state dump stays recognizable.
const (
	KeyAccounts = "crm_fleet_acc"
	KeyLogs     = "crm_fleet_logs"
	KeyBatches  = "crm_fleet_batches"
	KeyWebhook  = "crm_fleet_hook"
)

// Store is a single-file key-value store holding one JSON value per
// domain. Every save is a total overwrite of that domain's value. The
// mutex serializes read-modify-write cycles across repositories.
type Store struct {
	db *bbolt.DB
	mu sync.Mutex
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Load reads one domain value. Returns found=false on a cold start;
// callers decide what an absent domain means.
func (s *Store) Load(key string, v interface{}) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(stateBucket).Get([]byte(key)); raw != nil {
			data = append(data, raw...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	return true, json.Unmarshal(data, v)
}

// Save overwrites one domain value synchronously.
func (s *Store) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), data)
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
