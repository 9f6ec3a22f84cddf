package table

import (
	"context"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

type Repository interface {
	CreateTable(
		ctx context.Context,
		t *models.Table,
	) error

	ListTables(
		ctx context.Context,
		restaurantID string,
	) ([]models.Table, error)

	GetTable(
		ctx context.Context,
		restaurantID string,
		tableID string,
	) (*models.Table, error)

	RenameTable(
		ctx context.Context,
		restaurantID string,
		tableID string,
		name string,
	) (bool, error)

	UpdateTableCode(
		ctx context.Context,
		restaurantID string,
		tableID string,
		code string,
	) (bool, error)

	DeleteTable(
		ctx context.Context,
		restaurantID string,
		tableID string,
	) (bool, error)
}
