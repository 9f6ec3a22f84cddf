package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/auth"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

// FastHashParams keep argon2 cheap enough for tests.
var FastHashParams = auth.HashParams{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}

func Hasher() *auth.Hasher {
	return auth.NewHasher(FastHashParams)
}

func User(t testing.TB, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := Hasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	mustCreate(t, db, u)
	return u
}

// Restaurant creates a restaurant with owner as its super_admin.
func Restaurant(t testing.TB, db *gorm.DB, name string, owner *models.User) *models.Restaurant {
	t.Helper()

	r := &models.Restaurant{ID: uuid.NewString(), Name: name}
	mustCreate(t, db, r)
	Grant(t, db, r.ID, owner.ID, models.RoleSuperAdmin, true)
	return r
}

func Grant(t testing.TB, db *gorm.DB, restaurantID, userID, role string, canManageMenu bool) {
	t.Helper()

	mustCreate(t, db, &models.RestaurantManager{
		RestaurantID:  restaurantID,
		UserID:        userID,
		Role:          role,
		CanManageMenu: canManageMenu,
	})
}

func Table(t testing.TB, db *gorm.DB, restaurantID, name, code string) *models.Table {
	t.Helper()

	tbl := &models.Table{ID: uuid.NewString(), RestaurantID: restaurantID, Name: name, UniqueCode: code}
	mustCreate(t, db, tbl)
	return tbl
}

func Section(t testing.TB, db *gorm.DB, restaurantID, name string, order int) *models.MenuSection {
	t.Helper()

	s := &models.MenuSection{ID: uuid.NewString(), RestaurantID: restaurantID, Name: name, DisplayOrder: order}
	mustCreate(t, db, s)
	return s
}

func Item(t testing.TB, db *gorm.DB, sectionID, name string, price float64, available bool) *models.MenuItem {
	t.Helper()

	it := &models.MenuItem{ID: uuid.NewString(), SectionID: sectionID, Name: name, Price: price, Available: available}
	mustCreate(t, db, it)
	return it
}

func mustCreate(t testing.TB, db *gorm.DB, v any) {
	t.Helper()

	if err := db.Omit(clause.Associations).Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}
