// Package store persists analysis results in a bbolt database so that runs
// over large datasets can be compared without recomputation.
//
// Layout:
//
//	runs/<run>/scores     address -> big-endian float64 bits
//	runs/<run>/distances  address -> big-endian uint64
//
// Saving into an existing run replaces that run's bucket of the same kind.
package store

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/katalvlaran/txgraph/core"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var (
	// ErrRunNotFound is returned when a run or one of its result kinds is missing.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrEmptyRun is returned for an empty run name.
	ErrEmptyRun = errors.New("store: run name is empty")

	// ErrCorruptValue is returned when a stored value has the wrong width.
	ErrCorruptValue = errors.New("store: corrupt value")
)

var (
	bucketRuns      = []byte("runs")
	bucketScores    = []byte("scores")
	bucketDistances = []byte("distances")
)

// Store is a handle on an open result database. It is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{
		Timeout:      5 * time.Second,
		NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
		FreelistType: bbolt.DefaultOptions.FreelistType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRuns)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "store: init")
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

// SaveScores stores betweenness scores under run.
func (s *Store) SaveScores(run string, scores map[string]float64) error {
	return s.replace(run, bucketScores, func(b *bbolt.Bucket) error {
		for addr, score := range scores {
			if err := b.Put([]byte(addr), encodeFloat(score)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveDistances stores the reached distances of rows under run.
// Unreached rows are not stored.
func (s *Store) SaveDistances(run string, rows []core.DistanceRow) error {
	return s.replace(run, bucketDistances, func(b *bbolt.Bucket) error {
		for _, r := range rows {
			if !r.Reached() {
				continue
			}
			if err := b.Put([]byte(r.Address), encodeUint(r.Distance)); err != nil {
				return err
			}
		}
		return nil
	})
}

// replace recreates runs/<run>/<kind> and fills it in one transaction.
func (s *Store) replace(run string, kind []byte, fill func(*bbolt.Bucket) error) error {
	if run == "" {
		return ErrEmptyRun
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		rb, err := tx.Bucket(bucketRuns).CreateBucketIfNotExists([]byte(run))
		if err != nil {
			return err
		}
		if rb.Bucket(kind) != nil {
			if err := rb.DeleteBucket(kind); err != nil {
				return err
			}
		}
		b, err := rb.CreateBucket(kind)
		if err != nil {
			return err
		}
		return fill(b)
	})

	return errors.Wrapf(err, "store: save %s/%s", run, kind)
}

// Scores loads the scores saved under run.
func (s *Store) Scores(run string) (map[string]float64, error) {
	out := map[string]float64{}
	err := s.view(run, bucketScores, func(k, v []byte) error {
		if len(v) != 8 {
			return errors.Wrapf(ErrCorruptValue, "score for %s", k)
		}
		out[string(k)] = decodeFloat(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Distances loads the distances saved under run.
func (s *Store) Distances(run string) (map[string]uint64, error) {
	out := map[string]uint64{}
	err := s.view(run, bucketDistances, func(k, v []byte) error {
		if len(v) != 8 {
			return errors.Wrapf(ErrCorruptValue, "distance for %s", k)
		}
		out[string(k)] = binary.BigEndian.Uint64(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Store) view(run string, kind []byte, fn func(k, v []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		rb := tx.Bucket(bucketRuns).Bucket([]byte(run))
		if rb == nil {
			return errors.Wrapf(ErrRunNotFound, "%q", run)
		}
		b := rb.Bucket(kind)
		if b == nil {
			return errors.Wrapf(ErrRunNotFound, "%q has no %s", run, kind)
		}
		return b.ForEach(fn)
	})
}

// Runs lists the saved run names in byte order.
func (s *Store) Runs() ([]string, error) {
	var runs []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(k, _ []byte) error {
			runs = append(runs, string(k))
			return nil
		})
	})

	return runs, errors.Wrap(err, "store: list runs")
}

// DeleteRun removes every result saved under run.
func (s *Store) DeleteRun(run string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.Bucket(bucketRuns).DeleteBucket([]byte(run))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return errors.Wrapf(ErrRunNotFound, "%q", run)
		}
		return err
	})

	return errors.WithStack(err)
}

func encodeFloat(f float64) []byte {
	return encodeUint(math.Float64bits(f))
}

func decodeFloat(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func encodeUint(u uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, u)

	return buf
}
