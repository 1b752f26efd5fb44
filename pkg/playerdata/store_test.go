package playerdata

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUpsertAndGetProfile(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	p := &Profile{
		UUID:      id,
		Username:  "Notch",
		FirstSeen: time.Now().Truncate(time.Second),
		LastSeen:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.UpsertProfile(p))

	got, found, err := store.Profile(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, p.Username, got.Username)
	assert.Equal(t, p.UUID, got.UUID)
}

func TestProfileNotFound(t *testing.T) {
	store := openTestStore(t)

	got, found, err := store.Profile(uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestUpsertProfileOverwrites(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	require.NoError(t, store.UpsertProfile(&Profile{UUID: id, Username: "old"}))
	require.NoError(t, store.UpsertProfile(&Profile{UUID: id, Username: "new"}))

	got, found, err := store.Profile(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", got.Username)
}

func TestBanAndUnban(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	banned, err := store.IsBanned(id)
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.Ban(id, "griefing"))
	banned, err = store.IsBanned(id)
	require.NoError(t, err)
	assert.True(t, banned)

	require.NoError(t, store.Unban(id))
	banned, err = store.IsBanned(id)
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestUnbanUnknownPlayerIsNoOp(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.Unban(uuid.New()))
}

func TestWhitelist(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	ok, err := store.IsWhitelisted(id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.AddToWhitelist(id))
	ok, err = store.IsWhitelisted(id)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.RemoveFromWhitelist(id))
	ok, err = store.IsWhitelisted(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	id := uuid.New()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.UpsertProfile(&Profile{UUID: id, Username: "Herobrine"}))
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, found, err := reopened.Profile(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Herobrine", got.Username)
}
