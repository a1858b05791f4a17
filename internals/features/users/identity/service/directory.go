package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengawasku_backend/internals/features/users/identity/model"
)

// Directory is the identity-directory consumer: it resolves national ID
// numbers to stable user IDs carrying an expected role.
type Directory struct {
	DB *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{DB: db}
}

// ResolveByNationalIDs maps nationalIDs to user IDs holding role, keeping
// input order (roster order matters for seat numbering). Identifiers that
// do not resolve to the expected role come back in missing.
func (d *Directory) ResolveByNationalIDs(tx *gorm.DB, role string, nationalIDs []string) (ids []uuid.UUID, missing []string, err error) {
	if tx == nil {
		tx = d.DB
	}
	if len(nationalIDs) == 0 {
		return nil, nil, nil
	}

	var rows []model.UserModel
	if err := tx.
		Where("user_national_id IN ? AND user_role = ?", nationalIDs, role).
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	byNationalID := make(map[string]uuid.UUID, len(rows))
	for _, u := range rows {
		byNationalID[u.UserNationalID] = u.UserID
	}

	seen := make(map[string]bool, len(nationalIDs))
	for _, nid := range nationalIDs {
		if seen[nid] {
			continue
		}
		seen[nid] = true
		id, ok := byNationalID[nid]
		if !ok {
			missing = append(missing, nid)
			continue
		}
		ids = append(ids, id)
	}
	return ids, missing, nil
}
