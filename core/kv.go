package core

import "errors"

var ErrKeyNotFound = errors.New("key not found")

type (
	// KVStore is the flat key→bytes map every table persists into.
	// Load returns ErrKeyNotFound for absent keys.
	KVStore interface {
		Load(key string) ([]byte, error)
		Save(key string, value []byte) error
		Keys() ([]string, error)
	}

	// Logger is any leveled logger the services report through.
	Logger interface {
		Debug(msg string, args ...interface{})
		Info(msg string, args ...interface{})
		Warn(msg string, args ...interface{})
		Error(msg string, args ...interface{})
		Fatal(msg string, args ...interface{})
	}
)
