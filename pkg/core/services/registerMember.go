package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/identity"
	"github.com/dulbrich/wardclean/pkg/db"
)

// RegisterMemberInput holds the profile fields captured at registration
type RegisterMemberInput struct {
	MemberID      string
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	AssignedGroup string
}

// RegisterMemberResult reports the stored profile and any pre-registration
// activity claimed for it
type RegisterMemberResult struct {
	MemberID    string `json:"member_id"`
	LinkedTasks int    `json:"linked_tasks"`
}

// RegisterMember stores a member profile with its identity hash and links any
// anonymous cleaning activity recorded under the same hash before sign-up.
func RegisterMember(ctx context.Context, store db.ProfileStore, logger *zap.Logger, input RegisterMemberInput) (*RegisterMemberResult, error) {
	hash := identity.Hash(input.FirstName, input.LastName, input.PhoneNumber)

	profile := &db.MemberProfile{
		ID:            input.MemberID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		AssignedGroup: input.AssignedGroup,
		IdentityHash:  hash,
	}

	logger.Info("Registering member", zap.String("member_id", input.MemberID))

	if err := store.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	linked, err := store.LinkAnonymousActivity(ctx, hash, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to link anonymous activity: %w", err)
	}

	if linked > 0 {
		logger.Info("Linked pre-registration activity",
			zap.String("member_id", input.MemberID),
			zap.Int("linked_tasks", linked))
	}

	return &RegisterMemberResult{
		MemberID:    input.MemberID,
		LinkedTasks: linked,
	}, nil
}
