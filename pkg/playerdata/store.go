package playerdata

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketProfiles  = []byte("profiles")
	bucketBans      = []byte("bans")
	bucketWhitelist = []byte("whitelist")
)

// Profile is a player's persisted identity and last-seen state.
type Profile struct {
	UUID     uuid.UUID `json:"uuid"`
	Username string    `json:"username"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// BanEntry records why and when a player was banned.
type BanEntry struct {
	UUID     uuid.UUID `json:"uuid"`
	Reason   string    `json:"reason"`
	BannedAt time.Time `json:"banned_at"`
}

// Store is a BoltDB-backed persistence layer for player profiles, bans,
// and the whitelist.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the player data database under
// dataDir, ensuring all buckets exist.
func Open(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "players.db")
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("playerdata: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketProfiles, bucketBans, bucketWhitelist} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertProfile creates or overwrites a player's profile.
func (s *Store) UpsertProfile(p *Profile) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
		return tx.Bucket(bucketProfiles).Put(p.UUID[:], data)
	})
}

// Profile looks up a player's profile by UUID.
func (s *Store) Profile(id uuid.UUID) (*Profile, bool, error) {
	var p Profile
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketProfiles).Get(id[:])
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &p)
	})
	if err != nil {
		return nil, false, fmt.Errorf("playerdata: get profile %s: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &p, true, nil
}

// Ban adds id to the ban list.
func (s *Store) Ban(id uuid.UUID, reason string) error {
	entry := BanEntry{UUID: id, Reason: reason, BannedAt: time.Now()}
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal ban entry: %w", err)
		}
		return tx.Bucket(bucketBans).Put(id[:], data)
	})
}

// Unban removes id from the ban list. Removing an entry that was never
// banned is a no-op.
func (s *Store) Unban(id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketBans).Delete(id[:])
	})
}

// IsBanned reports whether id is currently on the ban list.
func (s *Store) IsBanned(id uuid.UUID) (bool, error) {
	var banned bool
	err := s.db.View(func(tx *bolt.Tx) error {
		banned = tx.Bucket(bucketBans).Get(id[:]) != nil
		return nil
	})
	return banned, err
}

// AddToWhitelist adds id to the whitelist.
func (s *Store) AddToWhitelist(id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWhitelist).Put(id[:], []byte{1})
	})
}

// RemoveFromWhitelist removes id from the whitelist.
func (s *Store) RemoveFromWhitelist(id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWhitelist).Delete(id[:])
	})
}

// IsWhitelisted reports whether id is on the whitelist.
func (s *Store) IsWhitelisted(id uuid.UUID) (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(bucketWhitelist).Get(id[:]) != nil
		return nil
	})
	return ok, err
}
