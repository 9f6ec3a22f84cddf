package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/letsorder/internal/domain/invite"
	"github.com/BruksfildServices01/letsorder/internal/models"
)

type InviteGormRepository struct {
	db *gorm.DB
}

func NewInviteGormRepository(db *gorm.DB) *InviteGormRepository {
	return &InviteGormRepository{db: db}
}

// --------------------------------------------------
// Issue
// --------------------------------------------------

func (r *InviteGormRepository) IsManagerByEmail(
	ctx context.Context,
	restaurantID string,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RestaurantManager{}).
		Joins("JOIN users ON users.id = restaurant_managers.user_id").
		Where("restaurant_managers.restaurant_id = ? AND users.email = ?", restaurantID, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InviteGormRepository) HasActiveInvite(
	ctx context.Context,
	restaurantID string,
	email string,
	now time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ManagerInvite{}).
		Where("restaurant_id = ? AND email = ? AND expires_at > ?", restaurantID, email, now).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InviteGormRepository) CreateInvite(
	ctx context.Context,
	inv *models.ManagerInvite,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error
}

// --------------------------------------------------
// Redeem
// --------------------------------------------------

func (r *InviteGormRepository) FindActiveInvite(
	ctx context.Context,
	restaurantID string,
	token string,
	now time.Time,
) (*models.ManagerInvite, error) {

	var inv models.ManagerInvite
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND token = ? AND expires_at > ?", restaurantID, token, now).
		First(&inv).Error; err != nil {
		return nil, notFound(err)
	}
	return &inv, nil
}

func (r *InviteGormRepository) Transaction(
	ctx context.Context,
	fn func(tx invite.RedeemTx) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&redeemTx{db: tx})
	})
}

// redeemTx only ever uses the transaction handle.
type redeemTx struct {
	db *gorm.DB
}

func (t *redeemTx) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := t.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (t *redeemTx) CreateUser(ctx context.Context, u *models.User) error {
	return t.db.WithContext(ctx).Create(u).Error
}

func (t *redeemTx) IsManager(ctx context.Context, restaurantID, userID string) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).
		Model(&models.RestaurantManager{}).
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *redeemTx) AddManager(ctx context.Context, m *models.RestaurantManager) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (t *redeemTx) ConsumeInvite(ctx context.Context, inviteID string) (bool, error) {
	res := t.db.WithContext(ctx).
		Where("id = ?", inviteID).
		Delete(&models.ManagerInvite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

var (
	_ invite.Repository = (*InviteGormRepository)(nil)
	_ invite.RedeemTx   = (*redeemTx)(nil)
)
