package postgres

import (
	"context"
	"fmt"

	"github.com/dulbrich/wardclean/pkg/db"
)

// UpsertProfile inserts a member profile or updates it if the id exists
func (d *DB) UpsertProfile(ctx context.Context, profile *db.MemberProfile) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO member_profile (id, first_name, last_name, email, phone_number, assigned_group, identity_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			assigned_group = EXCLUDED.assigned_group,
			identity_hash = EXCLUDED.identity_hash
	`, profile.ID, profile.FirstName, profile.LastName, nullable(profile.Email),
		nullable(profile.PhoneNumber), nullable(profile.AssignedGroup), profile.IdentityHash)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfilesByGroup retrieves profiles in the given cleaning group. Group
// "All" matches every profile.
func (d *DB) GetProfilesByGroup(ctx context.Context, assignedGroup string) ([]db.MemberProfile, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, phone_number, assigned_group, identity_hash
		FROM member_profile
		WHERE $1 = 'All' OR assigned_group = $1
	`, assignedGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []db.MemberProfile
	for rows.Next() {
		var p db.MemberProfile
		var email, phone, group *string
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &email, &phone, &group, &p.IdentityHash); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if email != nil {
			p.Email = *email
		}
		if phone != nil {
			p.PhoneNumber = *phone
		}
		if group != nil {
			p.AssignedGroup = *group
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// LinkAnonymousActivity reassigns session tasks recorded under anonymous temp
// ids sharing the identity hash to the registered member. Returns the number
// of tasks linked.
func (d *DB) LinkAnonymousActivity(ctx context.Context, identityHash, memberID string) (int, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE session_task SET member_id = $2
		WHERE member_id IN (
			SELECT temp_id FROM anonymous_participant WHERE identity_hash = $1
		)
	`, identityHash, memberID)
	if err != nil {
		return 0, fmt.Errorf("failed to link anonymous activity: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
