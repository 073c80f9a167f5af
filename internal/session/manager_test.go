package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

func newTestManager(t *testing.T) (*Manager, *user.MemoryStore, *user.User) {
	t.Helper()

	users := user.NewMemoryStore()
	u := &user.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, users.Create(context.Background(), u))

	return NewManager(NewMemoryStore(), users, TTL), users, u
}

func TestSerializeDeserializeRoundtrip(t *testing.T) {
	m, _, u := newTestManager(t)

	ref := m.Serialize(u)
	assert.Equal(t, u.ID, ref)

	restored, err := m.Deserialize(context.Background(), ref)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, u.ID, restored.ID)
}

func TestDeserializeDanglingReference(t *testing.T) {
	m, users, u := newTestManager(t)

	users.Delete(u.ID)

	restored, err := m.Deserialize(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestStartAndResolve(t *testing.T) {
	m, _, u := newTestManager(t)

	sess, err := m.Start(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, u.ID, sess.UserID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	restored, err := m.Resolve(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, u.ID, restored.ID)

	// resolving repeatedly does not change the answer
	again, err := m.Resolve(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, u.ID, again.ID)
}

func TestEndDestroysSession(t *testing.T) {
	m, _, u := newTestManager(t)

	sess, err := m.Start(context.Background(), u)
	require.NoError(t, err)

	require.NoError(t, m.End(context.Background(), sess.ID))

	restored, err := m.Resolve(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)

	// ending again is a no-op
	assert.NoError(t, m.End(context.Background(), sess.ID))
}

func TestResolveExpiredSession(t *testing.T) {
	users := user.NewMemoryStore()
	u := &user.User{Username: "alice"}
	require.NoError(t, users.Create(context.Background(), u))

	store := NewMemoryStore()
	m := NewManager(store, users, TTL)

	require.NoError(t, store.Create(context.Background(), Session{
		ID:        "expired-session",
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	restored, err := m.Resolve(context.Background(), "expired-session")
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestResolveUnknownOrEmptySession(t *testing.T) {
	m, _, _ := newTestManager(t)

	restored, err := m.Resolve(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, restored)

	restored, err = m.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestResolveSessionWithDeletedUser(t *testing.T) {
	m, users, u := newTestManager(t)

	sess, err := m.Start(context.Background(), u)
	require.NoError(t, err)

	users.Delete(u.ID)

	restored, err := m.Resolve(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestGenerateIDIsOpaqueAndUnique(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 32)
}
