package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/db"
)

// mockProfileStore implements a test double for db.ProfileStore
type mockProfileStore struct {
	profiles   []*db.MemberProfile
	linkedHash string
	linkedTo   string
	linkCount  int
	upsertErr  error
	linkErr    error
}

func (m *mockProfileStore) UpsertProfile(ctx context.Context, profile *db.MemberProfile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.profiles = append(m.profiles, profile)
	return nil
}

func (m *mockProfileStore) GetProfilesByGroup(ctx context.Context, assignedGroup string) ([]db.MemberProfile, error) {
	return nil, errors.New("not implemented")
}

func (m *mockProfileStore) LinkAnonymousActivity(ctx context.Context, identityHash, memberID string) (int, error) {
	if m.linkErr != nil {
		return 0, m.linkErr
	}
	m.linkedHash = identityHash
	m.linkedTo = memberID
	return m.linkCount, nil
}

func TestRegisterMember_StoresProfileWithHash(t *testing.T) {
	mock := &mockProfileStore{linkCount: 3}

	input := RegisterMemberInput{
		MemberID:      "member-1",
		FirstName:     "David",
		LastName:      "Ulbrich",
		PhoneNumber:   "801-971-9802",
		Email:         "david@example.com",
		AssignedGroup: "B",
	}

	result, err := RegisterMember(context.Background(), mock, zap.NewNop(), input)
	require.NoError(t, err)

	assert.Equal(t, "member-1", result.MemberID)
	assert.Equal(t, 3, result.LinkedTasks)

	require.Len(t, mock.profiles, 1)
	profile := mock.profiles[0]
	// sha256("DAVULB9802")
	assert.Equal(t, "957652c0fd0982889395cf96679cdd8d8235d57a00acc862fa72d6560c04d00b", profile.IdentityHash)
	assert.Equal(t, "B", profile.AssignedGroup)

	// The same hash is used for linking
	assert.Equal(t, profile.IdentityHash, mock.linkedHash)
	assert.Equal(t, "member-1", mock.linkedTo)
}

func TestRegisterMember_NoAnonymousActivity(t *testing.T) {
	mock := &mockProfileStore{linkCount: 0}

	result, err := RegisterMember(context.Background(), mock, zap.NewNop(), RegisterMemberInput{
		MemberID:  "member-2",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Zero(t, result.LinkedTasks)
}

func TestRegisterMember_StoreErrors(t *testing.T) {
	input := RegisterMemberInput{MemberID: "member-1", FirstName: "David", LastName: "Ulbrich"}

	t.Run("upsert fails", func(t *testing.T) {
		mock := &mockProfileStore{upsertErr: errors.New("constraint violation")}
		_, err := RegisterMember(context.Background(), mock, zap.NewNop(), input)
		assert.Error(t, err)
	})

	t.Run("link fails", func(t *testing.T) {
		mock := &mockProfileStore{linkErr: errors.New("timeout")}
		_, err := RegisterMember(context.Background(), mock, zap.NewNop(), input)
		assert.Error(t, err)
	})
}
