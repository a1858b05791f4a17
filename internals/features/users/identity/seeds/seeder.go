package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pengawasku_backend/internals/constants"
	"pengawasku_backend/internals/features/users/identity/model"
)

type seedUser struct {
	NationalID string
	FullName   string
	Role       string
}

var demoUsers = []seedUser{
	{"9001011234", "Admin Utama", constants.RoleAdmin},
	{"8505052345", "Dewi Lestari", constants.RoleLecturer},
	{"8703033456", "Budi Santoso", constants.RoleSupervisor},
	{"8901094567", "Siti Rahma", constants.RoleSupervisor},
	{"0204015678", "Agus Wijaya", constants.RoleStudent},
	{"0108026789", "Rina Putri", constants.RoleStudent},
	{"0211037890", "Joko Susilo", constants.RoleStudent},
}

// SeedUsers inserts the demo directory users, skipping existing national IDs.
func SeedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] bcrypt err: %v", err)
		return
	}

	for _, su := range demoUsers {
		u := model.UserModel{
			UserNationalID:   su.NationalID,
			UserFullName:     su.FullName,
			UserRole:         su.Role,
			UserPasswordHash: string(hash),
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_national_id"}},
			DoNothing: true,
		}).Create(&u).Error; err != nil {
			log.Printf("[SEED] user %s err: %v", su.NationalID, err)
		}
	}
	log.Printf("[SEED] %d directory users ensured", len(demoUsers))
}
