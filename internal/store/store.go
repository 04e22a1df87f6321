// Package store persists the search's killer-move table across process
// runs using BadgerDB. It is explicitly not an opening book: every
// entry it ever contains is a move the search itself discovered as a
// beta cutoff during some earlier run, not pre-seeded theory.
package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/colding10/finch/internal/board"
	"github.com/colding10/finch/internal/engine"
)

// Store wraps a BadgerDB instance dedicated to the killer-move cache.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeKey(hash uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], hash)
	return k[:]
}

func encodeMove(m board.Move) []byte {
	return []byte{
		byte(m.From), byte(m.From >> 8),
		byte(m.To), byte(m.To >> 8),
		byte(m.Promotion),
	}
}

func decodeMove(v []byte) board.Move {
	if len(v) < 5 {
		return board.NullMove
	}
	return board.Move{
		From:      board.Square(int(v[0]) | int(v[1])<<8),
		To:        board.Square(int(v[2]) | int(v[3])<<8),
		Promotion: board.Piece(v[4]),
	}
}

// Save writes every entry currently held by killer into the database in
// a single transaction.
func (s *Store) Save(killer *engine.KillerTable) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for hash, move := range killer.Entries() {
			if err := txn.Set(encodeKey(hash), encodeMove(move)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load populates killer from whatever the database currently holds,
// leaving it untouched (not cleared first) so a fresh in-memory table
// is simply extended.
func (s *Store) Load(killer *engine.KillerTable) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			hash := binary.BigEndian.Uint64(item.Key())
			if err := item.Value(func(val []byte) error {
				killer.Set(hash, decodeMove(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
