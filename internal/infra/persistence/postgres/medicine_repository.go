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

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

var medicineOrderings = map[entity.MedicineSort]string{
	entity.MedicineSortNewest:    "medicines.created_at DESC",
	entity.MedicineSortPriceAsc:  "medicines.price ASC",
	entity.MedicineSortPriceDesc: "medicines.price DESC",
	entity.MedicineSortName:      "medicines.name ASC",
}

func (repo *medicineRepository) List(ctx context.Context, filter entity.MedicineFilter) ([]*entity.Medicine, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{})

	if filter.Status != nil {
		query = query.Where("medicines.status = ?", string(*filter.Status))
	}
	if filter.SellerID != nil {
		query = query.Where("medicines.seller_id = ?", *filter.SellerID)
	}
	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = medicines.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.MinPrice != nil {
		query = query.Where("medicines.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("medicines.price <= ?", *filter.MaxPrice)
	}
	if filter.IDs != nil {
		query = query.Where("medicines.id IN ?", filter.IDs)
	} else if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(
			`(LOWER(medicines.name) LIKE ? ESCAPE '\' OR LOWER(medicines.manufacturer) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}

	// Share the filters between the count and the page query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count medicines")
	}

	ordering, ok := medicineOrderings[filter.Sort]
	if !ok {
		ordering = medicineOrderings[entity.MedicineSortNewest]
	}

	var medicineMs []*model.MedicineModel
	if err := query.Preload("Category").
		Scopes(paginate(filter.Page, filter.Limit)).
		Order(ordering).
		Find(&medicineMs).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineMs))
	for _, medicineM := range medicineMs {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, total, nil
}

func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicineM model.MedicineModel
	if err := repo.db.WithContext(ctx).Preload("Category").First(&medicineM, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, domainerrors.ErrMedicineNotFound, "failed to find medicine by id")
	}

	return toMedicineDomain(&medicineM), nil
}

func (repo *medicineRepository) FindBySlug(ctx context.Context, slug string) (*entity.Medicine, error) {
	var medicineM model.MedicineModel
	if err := repo.db.WithContext(ctx).Preload("Category").First(&medicineM, "slug = ?", slug).Error; err != nil {
		return nil, notFoundOr(err, domainerrors.ErrMedicineNotFound, "failed to find medicine by slug")
	}

	return toMedicineDomain(&medicineM), nil
}

func (repo *medicineRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check medicine slug")
	}

	return count > 0, nil
}

func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)
	if err := repo.db.WithContext(ctx).Omit("Category").Create(medicineM).Error; err != nil {
		return writeError(err, domainerrors.ErrMedicineSlugTaken, "failed to create medicine")
	}

	medicine.ID = medicineM.ID
	medicine.CreatedAt = medicineM.CreatedAt
	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

func (repo *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ?", medicine.ID).
		Updates(map[string]any{
			"name":                  medicine.Name,
			"slug":                  medicine.Slug,
			"description":           medicine.Description,
			"manufacturer":          medicine.Manufacturer,
			"price":                 medicine.Price,
			"stock":                 medicine.Stock,
			"image":                 medicine.Image,
			"requires_prescription": medicine.RequiresPrescription,
			"status":                string(medicine.Status),
			"category_id":           medicine.CategoryID,
		})
	if result.Error != nil {
		return writeError(result.Error, domainerrors.ErrMedicineSlugTaken, "failed to update medicine")
	}
	if result.RowsAffected == 0 {
		return notFoundOr(gorm.ErrRecordNotFound, domainerrors.ErrMedicineNotFound, "failed to update medicine")
	}

	return nil
}

func (repo *medicineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MedicineModel{}, "id = ?", id)
	if result.Error != nil {
		return writeError(result.Error, nil, "failed to delete medicine")
	}
	if result.RowsAffected == 0 {
		return notFoundOr(gorm.ErrRecordNotFound, domainerrors.ErrMedicineNotFound, "failed to delete medicine")
	}

	return nil
}

func (repo *medicineRepository) HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("medicine_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check medicine orders")
	}

	return count > 0, nil
}

// DecrementStock is a single conditional UPDATE so concurrent checkouts cannot oversell.
func (repo *medicineRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock.WrapMessage("stock decrement rejected")
	}

	return nil
}

func (repo *medicineRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment stock")
	}

	return nil
}

func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:                   data.ID,
		Name:                 data.Name,
		Slug:                 data.Slug,
		Description:          data.Description,
		Manufacturer:         data.Manufacturer,
		Price:                data.Price,
		Stock:                data.Stock,
		Image:                data.Image,
		RequiresPrescription: data.RequiresPrescription,
		Status:               entity.MedicineStatus(data.Status),
		CategoryID:           data.CategoryID,
		SellerID:             data.SellerID,
		Category:             toCategoryDomain(data.Category),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	return &model.MedicineModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Slug:                 data.Slug,
		Description:          data.Description,
		Manufacturer:         data.Manufacturer,
		Price:                data.Price,
		Stock:                data.Stock,
		Image:                data.Image,
		RequiresPrescription: data.RequiresPrescription,
		Status:               string(data.Status),
		CategoryID:           data.CategoryID,
		SellerID:             data.SellerID,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
