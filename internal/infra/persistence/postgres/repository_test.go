package postgres

import (
	"context"
	"testing"
	"time"

	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, model.AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: email, Role: role, Status: entity.UserStatusActive}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, Slug: slug}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	return category
}

func seedMedicine(t *testing.T, db *gorm.DB, sellerID, categoryID uuid.UUID, name, price string, stock int) *entity.Medicine {
	t.Helper()

	medicine := &entity.Medicine{
		Name:         name,
		Slug:         entity.Slugify(name),
		Manufacturer: "Acme Pharma",
		Price:        decimal.RequireFromString(price),
		Stock:        stock,
		Status:       entity.MedicineStatusActive,
		CategoryID:   categoryID,
		SellerID:     sellerID,
	}
	require.NoError(t, NewMedicineRepository(db).Create(context.Background(), medicine))

	return medicine
}

func seedOrder(t *testing.T, db *gorm.DB, userID uuid.UUID, status entity.OrderStatus, items ...*entity.OrderItem) *entity.Order {
	t.Helper()

	order := &entity.Order{
		UserID:          userID,
		Status:          status,
		PaymentStatus:   entity.PaymentStatusUnpaid,
		PaymentMethod:   entity.PaymentMethodCashOnDelivery,
		ShippingAddress: "12 Main Street",
		Phone:           "555-0100",
		Items:           items,
	}
	order.RecalculateTotal()
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), order))

	return order
}

func TestUserRepository_CreateFindAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "Alice", "alice@example.com", entity.RoleCustomer)
	seedUser(t, db, "Bob Seller", "bob@shop.example", entity.RoleSeller)
	seedUser(t, db, "Carol", "carol@example.com", entity.RoleAdmin)

	assert.NotEqual(t, uuid.Nil, alice.ID)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, entity.RoleCustomer, found.Role)

	err = repo.Create(ctx, &entity.User{Name: "Dup", Email: "alice@example.com", Role: entity.RoleCustomer, Status: entity.UserStatusActive})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	seller := entity.RoleSeller
	users, total, err := repo.List(ctx, entity.UserFilter{Role: &seller, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "Bob Seller", users[0].Name)

	users, total, err = repo.List(ctx, entity.UserFilter{Search: "EXAMPLE.COM", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)

	users, total, err = repo.List(ctx, entity.UserFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 1)

	require.NoError(t, repo.UpdateRole(ctx, alice.ID, entity.RoleSeller))
	require.NoError(t, repo.UpdateStatus(ctx, alice.ID, entity.UserStatusBanned))
	found, err = repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, found.Role)
	assert.Equal(t, entity.UserStatusBanned, found.Status)

	err = repo.UpdateRole(ctx, uuid.New(), entity.RoleAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserRepository_SearchEscapesWildcards(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "Percent", "100%@example.com", entity.RoleCustomer)
	seedUser(t, db, "Plain", "plain@example.com", entity.RoleCustomer)

	users, total, err := NewUserRepository(db).List(context.Background(), entity.UserFilter{Search: "%", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "Percent", users[0].Name)
}

func TestCategoryRepository_SlugRules(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	pain := seedCategory(t, db, "Pain Relief", "pain-relief")

	exists, err := repo.SlugExists(ctx, "pain-relief", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, "pain-relief", &pain.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a category does not collide with itself")

	err = repo.Create(ctx, &entity.Category{Name: "Other", Slug: "pain-relief"})
	assert.True(t, errors.Is(err, domainerrors.ErrCategorySlugTaken))

	pain.Name = "Pain & Fever"
	require.NoError(t, repo.Update(ctx, pain))
	found, err := repo.FindBySlug(ctx, "pain-relief")
	require.NoError(t, err)
	assert.Equal(t, "Pain & Fever", found.Name)

	require.NoError(t, repo.Delete(ctx, pain.ID))
	exists, err = repo.SlugExists(ctx, "pain-relief", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Delete(ctx, pain.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryRepository_CountMedicines(t *testing.T) {
	db := newTestDB(t)
	seller := seedUser(t, db, "Seller", "seller@example.com", entity.RoleSeller)
	vitamins := seedCategory(t, db, "Vitamins", "vitamins")
	empty := seedCategory(t, db, "Empty", "empty")
	seedMedicine(t, db, seller.ID, vitamins.ID, "Vitamin C", "4.50", 10)

	repo := NewCategoryRepository(db)
	count, err := repo.CountMedicines(context.Background(), vitamins.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.CountMedicines(context.Background(), empty.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMedicineRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewMedicineRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com", entity.RoleSeller)
	other := seedUser(t, db, "Other", "other@example.com", entity.RoleSeller)
	pain := seedCategory(t, db, "Pain Relief", "pain-relief")
	vitamins := seedCategory(t, db, "Vitamins", "vitamins")

	seedMedicine(t, db, seller.ID, pain.ID, "Paracetamol 500mg", "3.20", 40)
	seedMedicine(t, db, seller.ID, pain.ID, "Ibuprofen 200mg", "5.80", 25)
	seedMedicine(t, db, other.ID, vitamins.ID, "Vitamin D3", "12.00", 10)
	hidden := seedMedicine(t, db, other.ID, vitamins.ID, "Vitamin B12", "8.00", 5)
	hidden.Status = entity.MedicineStatusInactive
	require.NoError(t, repo.Update(ctx, hidden))

	active := entity.MedicineStatusActive

	items, total, err := repo.List(ctx, entity.MedicineFilter{Status: &active, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	items, total, err = repo.List(ctx, entity.MedicineFilter{Status: &active, CategorySlug: "pain-relief", Sort: entity.MedicineSortPriceDesc, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Ibuprofen 200mg", items[0].Name)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "pain-relief", items[0].Category.Slug)

	items, _, err = repo.List(ctx, entity.MedicineFilter{Status: &active, Search: "VITAMIN", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Vitamin D3", items[0].Name)

	minPrice := decimal.RequireFromString("4")
	maxPrice := decimal.RequireFromString("10")
	items, _, err = repo.List(ctx, entity.MedicineFilter{Status: &active, MinPrice: &minPrice, MaxPrice: &maxPrice, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ibuprofen 200mg", items[0].Name)

	items, total, err = repo.List(ctx, entity.MedicineFilter{SellerID: &other.ID, Sort: entity.MedicineSortName, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Vitamin B12", items[0].Name)

	items, total, err = repo.List(ctx, entity.MedicineFilter{Status: &active, IDs: []uuid.UUID{}, Search: "vitamin", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestMedicineRepository_Stock(t *testing.T) {
	db := newTestDB(t)
	repo := NewMedicineRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com", entity.RoleSeller)
	pain := seedCategory(t, db, "Pain Relief", "pain-relief")
	med := seedMedicine(t, db, seller.ID, pain.ID, "Aspirin", "2.00", 3)

	require.NoError(t, repo.DecrementStock(ctx, med.ID, 2))

	err := repo.DecrementStock(ctx, med.ID, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	require.NoError(t, repo.IncrementStock(ctx, med.ID, 4))

	found, err := repo.FindByID(ctx, med.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Stock)

	err = repo.Create(ctx, &entity.Medicine{Name: "Aspirin", Slug: "aspirin", Price: decimal.NewFromInt(1), Status: entity.MedicineStatusActive, CategoryID: pain.ID, SellerID: seller.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineSlugTaken))
}

func TestReviewRepository_UniquePairAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com", entity.RoleSeller)
	alice := seedUser(t, db, "Alice", "alice@example.com", entity.RoleCustomer)
	bob := seedUser(t, db, "Bob", "bob@example.com", entity.RoleCustomer)
	pain := seedCategory(t, db, "Pain Relief", "pain-relief")
	med := seedMedicine(t, db, seller.ID, pain.ID, "Aspirin", "2.00", 3)

	older := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Review{UserID: alice.ID, MedicineID: med.ID, Rating: 4, CreatedAt: older, UpdatedAt: older}))
	require.NoError(t, repo.Create(ctx, &entity.Review{UserID: bob.ID, MedicineID: med.ID, Rating: 5, CreatedAt: older.Add(time.Hour), UpdatedAt: older.Add(time.Hour)}))

	err := repo.Create(ctx, &entity.Review{UserID: alice.ID, MedicineID: med.ID, Rating: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))

	exists, err := repo.Exists(ctx, alice.ID, med.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	reviews, err := repo.ListByMedicine(ctx, med.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, bob.ID, reviews[0].UserID, "most recent first")
	assert.Equal(t, "Bob", reviews[0].UserName)

	reviews[1].Rating = 2
	require.NoError(t, repo.Update(ctx, reviews[1]))
	require.NoError(t, repo.Delete(ctx, reviews[0].ID))

	_, err = repo.FindByID(ctx, reviews[0].ID)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestOrderRepository_CreateAndSellerScope(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	sellerA := seedUser(t, db, "Seller A", "a@example.com", entity.RoleSeller)
	sellerB := seedUser(t, db, "Seller B", "b@example.com", entity.RoleSeller)
	buyer := seedUser(t, db, "Buyer", "buyer@example.com", entity.RoleCustomer)
	pain := seedCategory(t, db, "Pain Relief", "pain-relief")
	medA := seedMedicine(t, db, sellerA.ID, pain.ID, "Aspirin", "2.00", 30)
	medB := seedMedicine(t, db, sellerB.ID, pain.ID, "Naproxen", "6.50", 30)

	mixed := seedOrder(t, db, buyer.ID, entity.OrderStatusPending,
		&entity.OrderItem{MedicineID: medA.ID, MedicineName: medA.Name, Price: medA.Price, Quantity: 2},
		&entity.OrderItem{MedicineID: medB.ID, MedicineName: medB.Name, Price: medB.Price, Quantity: 1},
	)
	onlyB := seedOrder(t, db, buyer.ID, entity.OrderStatusPending,
		&entity.OrderItem{MedicineID: medB.ID, MedicineName: medB.Name, Price: medB.Price, Quantity: 3},
	)

	found, err := repo.FindByID(ctx, mixed.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.True(t, decimal.RequireFromString("10.50").Equal(found.Total))

	orders, total, err := repo.List(ctx, entity.OrderFilter{SellerID: &sellerA.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, mixed.ID, orders[0].ID)

	_, total, err = repo.List(ctx, entity.OrderFilter{UserID: &buyer.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	ok, err := repo.ContainsSellerItems(ctx, onlyB.ID, sellerA.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.ContainsSellerItems(ctx, onlyB.ID, sellerB.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.UpdateStatus(ctx, onlyB.ID, entity.OrderStatusPending, entity.OrderStatusCancelled))
	// The order is no longer pending, so a second cancel is rejected.
	err = repo.UpdateStatus(ctx, onlyB.ID, entity.OrderStatusPending, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderTransition))
	require.NoError(t, repo.UpdatePaymentStatus(ctx, mixed.ID, entity.PaymentStatusPaid))

	cancelled := entity.OrderStatusCancelled
	orders, _, err = repo.List(ctx, entity.OrderFilter{Status: &cancelled, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, onlyB.ID, orders[0].ID)

	hasOrders, err := NewMedicineRepository(db).HasOrderItems(ctx, medA.ID)
	require.NoError(t, err)
	assert.True(t, hasOrders)
}

func TestStatsRepository_Aggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "Seller", "seller@example.com", entity.RoleSeller)
	buyer := seedUser(t, db, "Buyer", "buyer@example.com", entity.RoleCustomer)
	seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	pain := seedCategory(t, db, "Pain Relief", "pain-relief")
	med := seedMedicine(t, db, seller.ID, pain.ID, "Aspirin", "2.00", 30)

	seedOrder(t, db, buyer.ID, entity.OrderStatusDelivered,
		&entity.OrderItem{MedicineID: med.ID, MedicineName: med.Name, Price: med.Price, Quantity: 2})
	seedOrder(t, db, buyer.ID, entity.OrderStatusCancelled,
		&entity.OrderItem{MedicineID: med.ID, MedicineName: med.Name, Price: med.Price, Quantity: 1})

	reviews := NewReviewRepository(db)
	require.NoError(t, reviews.Create(ctx, &entity.Review{UserID: buyer.ID, MedicineID: med.ID, Rating: 4}))

	lines, err := repo.SellerOrderLines(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	statuses := map[entity.OrderStatus]int{}
	for _, line := range lines {
		statuses[line.OrderStatus] += line.Quantity
	}
	assert.Equal(t, map[entity.OrderStatus]int{entity.OrderStatusDelivered: 2, entity.OrderStatusCancelled: 1}, statuses)

	products, err := repo.CountMedicinesBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, products)

	ratings, err := repo.SellerRatings(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{Count: 1, Sum: 4}, ratings)

	ratings, err = repo.SellerRatings(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{}, ratings)

	roleCounts, err := repo.CountUsersByRole(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.RoleCount{
		{Role: entity.RoleSeller, Count: 1},
		{Role: entity.RoleCustomer, Count: 1},
		{Role: entity.RoleAdmin, Count: 1},
	}, roleCounts)

	byStatus, err := repo.OrdersByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, byStatus, 2)
	for _, summary := range byStatus {
		assert.EqualValues(t, 1, summary.Count)
	}

	all, err := repo.Ratings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{Count: 1, Sum: 4}, all)
}

func TestTransactionManager_ApproveSellerIsAtomic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	applicant := seedUser(t, db, "Applicant", "applicant@example.com", entity.RoleCustomer)
	admin := seedUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	apps := NewSellerApplicationRepository(db)
	app := &entity.SellerApplication{UserID: applicant.ID, StoreName: "Corner Pharmacy", Phone: "555-0101", Address: "1 Elm St", Status: entity.ApplicationStatusPending}
	require.NoError(t, apps.Create(ctx, app))

	pending, err := apps.HasPending(ctx, applicant.ID)
	require.NoError(t, err)
	assert.True(t, pending)

	failure := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		app.Status = entity.ApplicationStatusApproved
		if err := f.NewSellerApplicationRepository().UpdateReview(ctx, app); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	stored, err := apps.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusPending, stored.Status, "rolled back")

	reviewedAt := time.Now()
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		app.Status = entity.ApplicationStatusApproved
		app.ReviewedBy = &admin.ID
		app.ReviewedAt = &reviewedAt
		if err := f.NewSellerApplicationRepository().UpdateReview(ctx, app); err != nil {
			return err
		}

		return f.NewUserRepository().UpdateRole(ctx, app.UserID, entity.RoleSeller)
	})
	require.NoError(t, err)

	stored, err = apps.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApproved, stored.Status)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, admin.ID, *stored.ReviewedBy)
	require.NotNil(t, stored.User)
	assert.Equal(t, entity.RoleSeller, stored.User.Role)

	app.Status = entity.ApplicationStatusRejected
	err = apps.UpdateReview(ctx, app)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	status := entity.ApplicationStatusApproved
	list, total, err := apps.List(ctx, &status, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)

	latest, err := apps.FindLatestByUserID(ctx, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, latest.ID)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "Alice", "alice@example.com", entity.RoleCustomer)

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.RefreshToken{UserID: user.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.RefreshToken{UserID: user.ID, TokenHash: "stale", ExpiresAt: now.Add(-time.Hour)}))

	token, err := repo.FindByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	deleted, err := repo.DeleteByHash(ctx, "live")
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = repo.FindByHash(ctx, "live")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))

	// A second delete of the same token removes nothing.
	deleted, err = repo.DeleteByHash(ctx, "live")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCredentialRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "Alice", "alice@example.com", entity.RoleCustomer)

	cred := &entity.Credential{UserID: user.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: user.Email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, cred))
	assert.NotEqual(t, uuid.Nil, cred.ID)

	found, err := repo.FindByProvider(ctx, entity.ProviderTypeEmail, user.Email)
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByProvider(ctx, entity.ProviderTypeEmail, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
