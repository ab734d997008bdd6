package analytics

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"

	"monoblackjack/x/blackjack/types"
)

// Store persists round summaries in a key-value database.
type Store struct {
	db dbm.DB
}

func NewStore(db dbm.DB) *Store {
	if db == nil {
		panic("analytics store: db is nil")
	}
	return &Store{db: db}
}

// NewMemStore is an in-memory store for tests and throwaway simulations.
func NewMemStore() *Store {
	return NewStore(dbm.NewMemDB())
}

// OpenStore opens (or creates) the goleveldb database under dir.
func OpenStore(dir string) (*Store, error) {
	db, err := dbm.NewDB(types.StoreKey, dbm.GoLevelDBBackend, dir)
	if err != nil {
		return nil, fmt.Errorf("open analytics db in %s: %w", dir, err)
	}
	return NewStore(db), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveRound(sum *RoundSummary) error {
	if sum == nil {
		return fmt.Errorf("round summary is nil")
	}
	bz, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("encode round %d: %w", sum.Round, err)
	}
	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(types.RoundKey(sum.Round), bz); err != nil {
		return err
	}
	last, err := s.LastRoundID()
	if err != nil {
		return err
	}
	if sum.Round > last {
		idbz := make([]byte, 8)
		binary.BigEndian.PutUint64(idbz, sum.Round)
		if err := batch.Set(types.LastRoundIDKey, idbz); err != nil {
			return err
		}
	}
	return batch.WriteSync()
}

// GetRound returns nil, nil when no summary is stored under id.
func (s *Store) GetRound(id uint64) (*RoundSummary, error) {
	bz, err := s.db.Get(types.RoundKey(id))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	var sum RoundSummary
	if err := json.Unmarshal(bz, &sum); err != nil {
		return nil, fmt.Errorf("decode round %d: %w", id, err)
	}
	return &sum, nil
}

func (s *Store) LastRoundID() (uint64, error) {
	bz, err := s.db.Get(types.LastRoundIDKey)
	if err != nil {
		return 0, err
	}
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, fmt.Errorf("invalid last round id encoding")
	}
	return binary.BigEndian.Uint64(bz), nil
}

// IterateRounds visits stored summaries in round order until cb returns true.
func (s *Store) IterateRounds(cb func(sum *RoundSummary) (stop bool)) error {
	it, err := s.db.Iterator(types.RoundKeyPrefix, storetypes.PrefixEndBytes(types.RoundKeyPrefix))
	if err != nil {
		return err
	}
	defer it.Close()

	for ; it.Valid(); it.Next() {
		key := it.Key()
		if len(key) != 1+8 || key[0] != types.RoundKeyPrefix[0] {
			continue
		}
		var sum RoundSummary
		if err := json.Unmarshal(it.Value(), &sum); err != nil {
			return fmt.Errorf("decode round %d: %w", binary.BigEndian.Uint64(key[1:]), err)
		}
		if cb(&sum) {
			break
		}
	}
	return it.Error()
}
