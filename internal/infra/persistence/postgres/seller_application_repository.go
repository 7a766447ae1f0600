package postgres

import (
	"context"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sellerApplicationRepository struct {
	db *gorm.DB
}

// NewSellerApplicationRepository is the constructor for sellerApplicationRepository.
func NewSellerApplicationRepository(db *gorm.DB) repository.SellerApplicationRepository {
	return &sellerApplicationRepository{db: db}
}

func (repo *sellerApplicationRepository) Create(ctx context.Context, app *entity.SellerApplication) error {
	appM := &model.SellerApplicationModel{
		ID:        app.ID,
		UserID:    app.UserID,
		StoreName: app.StoreName,
		Phone:     app.Phone,
		Address:   app.Address,
		Note:      app.Note,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
	if err := repo.db.WithContext(ctx).Omit("User").Create(appM).Error; err != nil {
		return writeError(err, domainerrors.ErrApplicationPending, "failed to create seller application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

func (repo *sellerApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerApplication, error) {
	var appM model.SellerApplicationModel
	if err := repo.db.WithContext(ctx).Preload("User").First(&appM, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domainerrors.ErrApplicationNotFound, "failed to find seller application")
	}

	return toSellerApplicationDomain(&appM), nil
}

func (repo *sellerApplicationRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerApplication, error) {
	var appM model.SellerApplicationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&appM).Error
	if err != nil {
		return nil, notFoundOr(err, domainerrors.ErrApplicationNotFound, "failed to find seller application")
	}

	return toSellerApplicationDomain(&appM), nil
}

func (repo *sellerApplicationRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SellerApplicationModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.ApplicationStatusPending)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check pending seller application")
	}

	return count > 0, nil
}

func (repo *sellerApplicationRepository) List(
	ctx context.Context,
	status *entity.ApplicationStatus,
	page, limit int,
) ([]*entity.SellerApplication, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SellerApplicationModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count seller applications")
	}

	var appMs []*model.SellerApplicationModel
	if err := query.Preload("User").
		Scopes(paginate(page, limit)).
		Order("created_at DESC").
		Find(&appMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list seller applications")
	}

	apps := make([]*entity.SellerApplication, 0, len(appMs))
	for _, appM := range appMs {
		apps = append(apps, toSellerApplicationDomain(appM))
	}

	return apps, total, nil
}

func (repo *sellerApplicationRepository) UpdateReview(ctx context.Context, app *entity.SellerApplication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerApplicationModel{}).
		Where("id = ? AND status = ?", app.ID, string(entity.ApplicationStatusPending)).
		Updates(map[string]any{
			"status":      string(app.Status),
			"reviewed_by": app.ReviewedBy,
			"reviewed_at": app.ReviewedAt,
		})

	return checkUpdated(result, domainerrors.ErrConflict, "seller application is not pending")
}

func toSellerApplicationDomain(data *model.SellerApplicationModel) *entity.SellerApplication {
	return &entity.SellerApplication{
		ID:         data.ID,
		UserID:     data.UserID,
		StoreName:  data.StoreName,
		Phone:      data.Phone,
		Address:    data.Address,
		Note:       data.Note,
		Status:     entity.ApplicationStatus(data.Status),
		ReviewedBy: data.ReviewedBy,
		ReviewedAt: data.ReviewedAt,
		User:       toUserDomain(data.User),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
