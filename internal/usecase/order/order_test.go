package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/letsorder/internal/dbtest"
	"github.com/BruksfildServices01/letsorder/internal/domain/access"
	domainorder "github.com/BruksfildServices01/letsorder/internal/domain/order"
	"github.com/BruksfildServices01/letsorder/internal/httperr"
	"github.com/BruksfildServices01/letsorder/internal/infra/repository"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type fixture struct {
	db *gorm.DB

	place  *PlaceOrder
	get    *GetOrder
	list   *ListOrders
	status *UpdateStatus

	owner *models.User
	rest  *models.Restaurant
	table *models.Table
	soup  *models.MenuItem
	steak *models.MenuItem
	gone  *models.MenuItem

	otherItem *models.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	repo := repository.NewOrderGormRepository(db)
	authz := access.NewAuthorizer(repository.NewAccessGormRepository(db))

	owner := dbtest.User(t, db, "owner@example.com", "password1")
	rest := dbtest.Restaurant(t, db, "Bistro", owner)
	tbl := dbtest.Table(t, db, rest.ID, "Window", "TABLE001")
	sec := dbtest.Section(t, db, rest.ID, "Mains", 1)

	rival := dbtest.User(t, db, "rival@example.com", "password1")
	other := dbtest.Restaurant(t, db, "Rival Diner", rival)
	otherSec := dbtest.Section(t, db, other.ID, "Mains", 1)

	return &fixture{
		db:        db,
		place:     NewPlaceOrder(repo, nil),
		get:       NewGetOrder(repo),
		list:      NewListOrders(repo, authz, "UTC"),
		status:    NewUpdateStatus(repo, authz, nil),
		owner:     owner,
		rest:      rest,
		table:     tbl,
		soup:      dbtest.Item(t, db, sec.ID, "Soup", 4.5, true),
		steak:     dbtest.Item(t, db, sec.ID, "Steak", 21, true),
		gone:      dbtest.Item(t, db, sec.ID, "Seasonal Tart", 7, false),
		otherItem: dbtest.Item(t, db, otherSec.ID, "Burger", 9, true),
	}
}

func (f *fixture) orderCount(t *testing.T) int64 {
	t.Helper()

	var n int64
	if err := f.db.Model(&models.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (f *fixture) placeSimple(t *testing.T) *models.Order {
	t.Helper()

	o, err := f.place.Execute(context.Background(), PlaceOrderInput{
		TableCode: f.table.UniqueCode,
		Items:     []PlaceOrderLine{{MenuItemID: f.soup.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	return o
}

func assertKind(t *testing.T, err error, want httperr.Kind) {
	t.Helper()

	got, ok := httperr.KindOf(err)
	if !ok || got != want {
		t.Fatalf("expected kind %d, got %v", want, err)
	}
}

func ptr[T any](v T) *T { return &v }

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o, err := f.place.Execute(ctx, PlaceOrderInput{
		TableCode: f.table.UniqueCode,
		Items: []PlaceOrderLine{
			{MenuItemID: f.soup.ID, Quantity: 2, SpecialRequests: ptr("no salt")},
			{MenuItemID: f.steak.ID, Quantity: 1},
		},
		CustomerName: ptr("  Ana  "),
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if o.TotalAmount != 2*4.5+21 {
		t.Fatalf("total = %v", o.TotalAmount)
	}
	if o.Status != string(domainorder.StatusPending) {
		t.Fatalf("status = %s", o.Status)
	}
	if o.CustomerName == nil || *o.CustomerName != "Ana" {
		t.Fatalf("customer name = %v", o.CustomerName)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}

	// a later price change must not leak into the stored order
	if err := f.db.Model(f.soup).Update("price", 99).Error; err != nil {
		t.Fatal(err)
	}

	got, err := f.get.Execute(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalAmount != 30 || got.Items[0].Price != 4.5 {
		t.Fatalf("snapshot changed: %+v", got)
	}
	if got.Items[0].MenuItemName != "Soup" || got.Items[1].MenuItemName != "Steak" {
		t.Fatalf("names out of order: %+v", got.Items)
	}
	if got.Items[0].SpecialRequests == nil || *got.Items[0].SpecialRequests != "no salt" {
		t.Fatalf("note lost: %+v", got.Items[0])
	}
	if got.TableName != "Window" || got.RestaurantName != "Bistro" {
		t.Fatalf("unexpected enrichment: %+v", got)
	}
}

func TestPlaceOrderRejectsForeignItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.place.Execute(context.Background(), PlaceOrderInput{
		TableCode: f.table.UniqueCode,
		Items: []PlaceOrderLine{
			{MenuItemID: f.soup.ID, Quantity: 1},
			{MenuItemID: f.otherItem.ID, Quantity: 1},
		},
	})
	assertKind(t, err, httperr.KindValidation)
	if want := "menu item " + f.otherItem.ID + " not found or not available"; err.Error() != "menu_item_unavailable: "+want {
		t.Fatalf("unexpected message: %v", err)
	}

	if n := f.orderCount(t); n != 0 {
		t.Fatalf("partial order persisted: %d", n)
	}
}

func TestPlaceOrderRejectsUnavailableItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.place.Execute(context.Background(), PlaceOrderInput{
		TableCode: f.table.UniqueCode,
		Items:     []PlaceOrderLine{{MenuItemID: f.gone.ID, Quantity: 1}},
	})
	assertKind(t, err, httperr.KindValidation)

	if n := f.orderCount(t); n != 0 {
		t.Fatalf("order persisted: %d", n)
	}
}

func TestPlaceOrderUnknownTable(t *testing.T) {
	f := newFixture(t)

	_, err := f.place.Execute(context.Background(), PlaceOrderInput{
		TableCode: "ZZZZZZZZ",
		Items:     []PlaceOrderLine{{MenuItemID: f.soup.ID, Quantity: 1}},
	})
	assertKind(t, err, httperr.KindNotFound)

	if n := f.orderCount(t); n != 0 {
		t.Fatalf("order persisted: %d", n)
	}
}

func TestPlaceOrderInputValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]PlaceOrderInput{
		"empty":         {TableCode: f.table.UniqueCode},
		"zero quantity": {TableCode: f.table.UniqueCode, Items: []PlaceOrderLine{{MenuItemID: f.soup.ID, Quantity: 0}}},
		"negative":      {TableCode: f.table.UniqueCode, Items: []PlaceOrderLine{{MenuItemID: f.soup.ID, Quantity: -2}}},
		"long name": {
			TableCode:    f.table.UniqueCode,
			Items:        []PlaceOrderLine{{MenuItemID: f.soup.ID, Quantity: 1}},
			CustomerName: ptr(strings.Repeat("x", 101)),
		},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.place.Execute(ctx, in)
			assertKind(t, err, httperr.KindValidation)
		})
	}

	if n := f.orderCount(t); n != 0 {
		t.Fatalf("order persisted: %d", n)
	}
}

func TestDeletedItemShowsPlaceholder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o, err := f.place.Execute(ctx, PlaceOrderInput{
		TableCode: f.table.UniqueCode,
		Items: []PlaceOrderLine{
			{MenuItemID: f.steak.ID, Quantity: 1},
			{MenuItemID: f.soup.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if err := f.db.Delete(&models.MenuItem{}, "id = ?", f.steak.ID).Error; err != nil {
		t.Fatal(err)
	}

	got, err := f.get.Execute(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Items[0].MenuItemName != domainorder.UnknownItemName {
		t.Fatalf("expected placeholder, got %q", got.Items[0].MenuItemName)
	}
	if got.Items[0].Price != 21 || got.Items[1].MenuItemName != "Soup" {
		t.Fatalf("unexpected lines: %+v", got.Items)
	}
}

func TestGetUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.get.Execute(context.Background(), "missing")
	assertKind(t, err, httperr.KindNotFound)
}

func TestListsRequireMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.placeSimple(t)
	stranger := dbtest.User(t, f.db, "stranger@example.com", "password1")

	_, err := f.list.Restaurant(ctx, stranger.ID, f.rest.ID)
	assertKind(t, err, httperr.KindForbidden)
	_, err = f.list.Today(ctx, stranger.ID, f.rest.ID)
	assertKind(t, err, httperr.KindForbidden)
	_, err = f.list.Table(ctx, stranger.ID, f.rest.ID, f.table.ID)
	assertKind(t, err, httperr.KindForbidden)
}

func TestListVariants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.placeSimple(t)
	second := f.placeSimple(t)

	// an order from two days ago only shows in the full listing
	old := f.placeSimple(t)
	if err := f.db.Model(&models.Order{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().UTC().Add(-48*time.Hour)).Error; err != nil {
		t.Fatal(err)
	}

	all, err := f.list.Restaurant(ctx, f.owner.ID, f.rest.ID)
	if err != nil {
		t.Fatalf("restaurant list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(all))
	}
	if all[len(all)-1].ID != old.ID {
		t.Fatal("orders not newest first")
	}

	today, err := f.list.Today(ctx, f.owner.ID, f.rest.ID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(today) != 2 {
		t.Fatalf("expected 2 orders today, got %d", len(today))
	}
	ids := map[string]bool{today[0].ID: true, today[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Fatalf("unexpected today orders: %v", ids)
	}

	byTable, err := f.list.Table(ctx, f.owner.ID, f.rest.ID, f.table.ID)
	if err != nil {
		t.Fatalf("table list: %v", err)
	}
	if len(byTable) != 3 || byTable[0].TableName != "Window" {
		t.Fatalf("unexpected table list: %+v", byTable)
	}
}

func TestListTableOfOtherRestaurant(t *testing.T) {
	f := newFixture(t)
	rival := dbtest.User(t, f.db, "rival2@example.com", "password1")
	other := dbtest.Restaurant(t, f.db, "Elsewhere", rival)
	foreign := dbtest.Table(t, f.db, other.ID, "T9", "OTHER001")

	_, err := f.list.Table(context.Background(), f.owner.ID, f.rest.ID, foreign.ID)
	assertKind(t, err, httperr.KindNotFound)
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := f.placeSimple(t)

	for _, next := range []string{"confirmed", "preparing", "served", "completed"} {
		got, err := f.status.Execute(ctx, f.owner.ID, f.rest.ID, o.ID, next)
		if err != nil {
			t.Fatalf("-> %s: %v", next, err)
		}
		if got.Status != next {
			t.Fatalf("status = %s, want %s", got.Status, next)
		}
	}

	_, err := f.status.Execute(ctx, f.owner.ID, f.rest.ID, o.ID, "cancelled")
	assertKind(t, err, httperr.KindConflict)

	_, err = f.status.Execute(ctx, f.owner.ID, f.rest.ID, o.ID, "teleported")
	assertKind(t, err, httperr.KindValidation)
}

func TestStatusUpdateScopedToRestaurant(t *testing.T) {
	f := newFixture(t)
	o := f.placeSimple(t)

	rival := dbtest.User(t, f.db, "rival3@example.com", "password1")
	other := dbtest.Restaurant(t, f.db, "Elsewhere", rival)

	_, err := f.status.Execute(context.Background(), rival.ID, other.ID, o.ID, "confirmed")
	assertKind(t, err, httperr.KindNotFound)

	_, err = f.status.Execute(context.Background(), rival.ID, f.rest.ID, o.ID, "confirmed")
	assertKind(t, err, httperr.KindForbidden)
}

// staleRepo reports the status an order had when it was read, while the
// stored row has moved on.
type staleRepo struct {
	*repository.OrderGormRepository
	status string
}

func (r *staleRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := r.OrderGormRepository.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = r.status
	return o, nil
}

func TestStatusGuardDetectsConcurrentChange(t *testing.T) {
	f := newFixture(t)
	o := f.placeSimple(t)

	if err := f.db.Model(&models.Order{}).Where("id = ?", o.ID).Update("status", "cancelled").Error; err != nil {
		t.Fatal(err)
	}

	authz := access.NewAuthorizer(repository.NewAccessGormRepository(f.db))
	uc := NewUpdateStatus(&staleRepo{OrderGormRepository: repository.NewOrderGormRepository(f.db), status: "pending"}, authz, nil)

	_, err := uc.Execute(context.Background(), f.owner.ID, f.rest.ID, o.ID, "confirmed")
	if !httperr.IsBusiness(err, "status_changed") {
		t.Fatalf("expected status_changed, got %v", err)
	}
}
