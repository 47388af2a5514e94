package postgres

import (
	"blogauth/internal/domain/entity"
	"blogauth/internal/infra/persistence/model"
)

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.Roles))
	for _, role := range data.Roles {
		roles = append(roles, entity.Role(role.Name))
	}

	return &entity.Identity{
		ID:                 data.ID,
		Username:           data.Username,
		NormalizedUsername: data.NormalizedUsername,
		Email:              data.Email,
		Mobile:             data.Mobile,
		PasswordHash:       data.PasswordHash,
		Roles:              roles,
		SecurityStamp:      data.SecurityStamp,
		EmailConfirmed:     data.EmailConfirmed,
		LockoutEnabled:     data.LockoutEnabled,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromIdentityDomain leaves Roles empty; Create resolves them to stored rows.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:                 data.ID,
		Username:           data.Username,
		NormalizedUsername: data.NormalizedUsername,
		Email:              data.Email,
		Mobile:             data.Mobile,
		PasswordHash:       data.PasswordHash,
		SecurityStamp:      data.SecurityStamp,
		EmailConfirmed:     data.EmailConfirmed,
		LockoutEnabled:     data.LockoutEnabled,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromResetTokenDomain(data *entity.ResetToken) *model.ResetTokenModel {
	return &model.ResetTokenModel{
		ID:            data.ID,
		IdentityID:    data.IdentityID,
		TokenHash:     data.TokenHash,
		SecurityStamp: data.SecurityStamp,
		ExpiresAt:     data.ExpiresAt,
		UsedAt:        data.UsedAt,
		CreatedAt:     data.CreatedAt,
	}
}

func toMirrorDomain(data *model.MirrorModel) *entity.MirrorRecord {
	if data == nil {
		return nil
	}

	return &entity.MirrorRecord{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		SyncedAt:     data.SyncedAt,
	}
}
