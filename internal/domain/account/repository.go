package account

import (
	"context"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

type Repository interface {
	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error
}
