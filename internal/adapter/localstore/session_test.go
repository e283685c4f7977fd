package localstore_test

import (
	"testing"

	"github.com/stitchkart/storefront/internal/adapter/localstore"
	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	sess := domain.AuthSession{
		Authenticated: true,
		UserID:        "u1",
		AccessToken:   "token",
		Profile:       domain.UserProfile{Name: "Amy", Email: "amy@example.com"},
	}

	t.Run("FreshStoreIsGuest", func(t *testing.T) {
		s := localstore.NewSessionStore(openTestDB(t))

		_, ok := s.UserID()
		assert.False(t, ok)
		assert.False(t, s.Session().Authenticated)
	})

	t.Run("SetThenRead", func(t *testing.T) {
		s := localstore.NewSessionStore(openTestDB(t))

		require.NoError(t, s.SetSession(sess))

		userID, ok := s.UserID()
		require.True(t, ok)
		assert.Equal(t, "u1", userID)
		assert.Equal(t, "Amy", s.Session().Profile.Name)
	})

	t.Run("ClearReturnsToGuest", func(t *testing.T) {
		s := localstore.NewSessionStore(openTestDB(t))

		require.NoError(t, s.SetSession(sess))
		require.NoError(t, s.ClearSession())

		_, ok := s.UserID()
		assert.False(t, ok)
	})

	t.Run("SessionWithoutUserIDIsGuest", func(t *testing.T) {
		s := localstore.NewSessionStore(openTestDB(t))

		anonymous := sess
		anonymous.UserID = ""
		require.NoError(t, s.SetSession(anonymous))

		_, ok := s.UserID()
		assert.False(t, ok)
	})

	t.Run("PersistsAcrossInstances", func(t *testing.T) {
		db := openTestDB(t)

		s1 := localstore.NewSessionStore(db)
		require.NoError(t, s1.SetSession(sess))

		s2 := localstore.NewSessionStore(db)
		userID, ok := s2.UserID()
		require.True(t, ok)
		assert.Equal(t, "u1", userID)
	})
}
