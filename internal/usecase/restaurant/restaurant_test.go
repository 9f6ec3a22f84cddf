package restaurant

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/letsorder/internal/dbtest"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/infra/repository"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type fixture struct {
	db    *gorm.DB
	authz access.Authorizer

	create  *Create
	list    *ListMine
	get     *Get
	update  *Update
	del     *Delete
	members *ListManagers
	remove  *RemoveManager
	perms   *UpdateManagerPermissions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	repo := repository.NewRestaurantGormRepository(db)
	authz := access.NewAuthorizer(repository.NewAccessGormRepository(db))

	return &fixture{
		db:      db,
		authz:   authz,
		create:  NewCreate(repo, nil),
		list:    NewListMine(repo),
		get:     NewGet(repo, authz),
		update:  NewUpdate(repo, authz, nil),
		del:     NewDelete(repo, authz),
		members: NewListManagers(repo, authz),
		remove:  NewRemoveManager(repo, authz, nil),
		perms:   NewUpdateManagerPermissions(repo, authz, nil),
	}
}

func ptr[T any](v T) *T { return &v }

func assertKind(t *testing.T, err error, want httperr.Kind) {
	t.Helper()

	got, ok := httperr.KindOf(err)
	if !ok || got != want {
		t.Fatalf("expected kind %d, got %v", want, err)
	}
}

func TestCreateGrantsSuperAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")

	r, err := f.create.Execute(ctx, owner.ID, Details{Name: ptr(" Trattoria "), Address: ptr("Main St 1")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Name != "Trattoria" {
		t.Fatalf("name not trimmed: %q", r.Name)
	}

	var grant models.RestaurantManager
	if err := f.db.Where("restaurant_id = ? AND user_id = ?", r.ID, owner.ID).First(&grant).Error; err != nil {
		t.Fatalf("owner grant missing: %v", err)
	}
	if grant.Role != models.RoleSuperAdmin || !grant.CanManageMenu {
		t.Fatalf("unexpected grant: %+v", grant)
	}

	mine, err := f.list.Execute(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].Restaurant.ID != r.ID || mine[0].Role != models.RoleSuperAdmin {
		t.Fatalf("unexpected memberships: %+v", mine)
	}
}

func TestCreateRollsBackWhenGrantFails(t *testing.T) {
	f := newFixture(t)

	// unknown owner violates the user foreign key, so the restaurant must not survive
	_, err := f.create.Execute(context.Background(), "no-such-user", Details{Name: ptr("Ghost")})
	if err == nil {
		t.Fatal("expected failure")
	}

	var count int64
	f.db.Model(&models.Restaurant{}).Count(&count)
	if count != 0 {
		t.Fatalf("restaurant persisted without owner: %d rows", count)
	}
}

func TestCreateRequiresName(t *testing.T) {
	f := newFixture(t)
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")

	_, err := f.create.Execute(context.Background(), owner.ID, Details{})
	assertKind(t, err, httperr.KindValidation)

	_, err = f.create.Execute(context.Background(), owner.ID, Details{Name: ptr("   ")})
	assertKind(t, err, httperr.KindValidation)
}

func TestGetRequiresMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	stranger := dbtest.User(t, f.db, "stranger@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)

	if _, err := f.get.Execute(ctx, owner.ID, r.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	_, err := f.get.Execute(ctx, stranger.ID, r.ID)
	assertKind(t, err, httperr.KindForbidden)
}

func TestUpdateRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	staff := dbtest.User(t, f.db, "staff@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)
	dbtest.Grant(t, f.db, r.ID, staff.ID, models.RoleManager, true)

	_, err := f.update.Execute(ctx, owner.ID, r.ID, Details{})
	assertKind(t, err, httperr.KindValidation)

	_, err = f.update.Execute(ctx, staff.ID, r.ID, Details{Name: ptr("Mine now")})
	assertKind(t, err, httperr.KindForbidden)

	got, err := f.update.Execute(ctx, owner.ID, r.ID, Details{EstablishmentYear: ptr(1999)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Bistro" || got.EstablishmentYear == nil || *got.EstablishmentYear != 1999 {
		t.Fatalf("unexpected restaurant: %+v", got)
	}
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)
	tbl := dbtest.Table(t, f.db, r.ID, "T1", "AAAA1111")
	sec := dbtest.Section(t, f.db, r.ID, "Mains", 1)
	item := dbtest.Item(t, f.db, sec.ID, "Pasta", 12, true)
	if err := f.db.Omit("Table").Create(&models.Order{
		ID:      "order-1",
		TableID: tbl.ID,
		Items:   []models.OrderLine{{MenuItemID: item.ID, Quantity: 1, Price: 12}},
	}).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	if err := f.del.Execute(ctx, owner.ID, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, model := range []any{
		&models.Restaurant{}, &models.RestaurantManager{}, &models.Table{},
		&models.MenuSection{}, &models.MenuItem{}, &models.Order{},
	} {
		var count int64
		f.db.Model(model).Count(&count)
		if count != 0 {
			t.Errorf("%T: %d rows left", model, count)
		}
	}

	// the grant went with the restaurant, so a second delete is forbidden
	err := f.del.Execute(ctx, owner.ID, r.ID)
	assertKind(t, err, httperr.KindForbidden)
}

func TestRemovedManagerLosesAccessImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	staff := dbtest.User(t, f.db, "staff@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)
	dbtest.Grant(t, f.db, r.ID, staff.ID, models.RoleManager, false)

	if _, err := f.get.Execute(ctx, staff.ID, r.ID); err != nil {
		t.Fatalf("staff get before removal: %v", err)
	}

	if err := f.remove.Execute(ctx, owner.ID, r.ID, staff.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := f.get.Execute(ctx, staff.ID, r.ID)
	assertKind(t, err, httperr.KindForbidden)

	err = f.remove.Execute(ctx, owner.ID, r.ID, staff.ID)
	assertKind(t, err, httperr.KindNotFound)
}

func TestRemoveSelfIsRejected(t *testing.T) {
	f := newFixture(t)
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)

	err := f.remove.Execute(context.Background(), owner.ID, r.ID, owner.ID)
	assertKind(t, err, httperr.KindValidation)
}

func TestMenuPermissionChangeIsImmediate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := dbtest.User(t, f.db, "owner@example.com", "password1")
	staff := dbtest.User(t, f.db, "staff@example.com", "password1")
	r := dbtest.Restaurant(t, f.db, "Bistro", owner)
	dbtest.Grant(t, f.db, r.ID, staff.ID, models.RoleManager, true)

	if err := f.authz.Authorize(ctx, staff.ID, r.ID, access.CapabilityManageMenu); err != nil {
		t.Fatalf("expected menu capability: %v", err)
	}

	if err := f.perms.Execute(ctx, owner.ID, r.ID, staff.ID, false); err != nil {
		t.Fatalf("update permissions: %v", err)
	}

	err := f.authz.Authorize(ctx, staff.ID, r.ID, access.CapabilityManageMenu)
	assertKind(t, err, httperr.KindForbidden)

	err = f.perms.Execute(ctx, owner.ID, r.ID, "nobody", true)
	assertKind(t, err, httperr.KindNotFound)

	list, err := f.members.Execute(ctx, staff.ID, r.ID)
	if err != nil {
		t.Fatalf("list managers: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 managers, got %d", len(list))
	}
	for _, m := range list {
		if m.UserID == staff.ID && (m.CanManageMenu || m.Email != "staff@example.com") {
			t.Fatalf("unexpected staff entry: %+v", m)
		}
	}
}
