package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/entity"
	domainerrors "zenvira/internal/domain/errors"
	"zenvira/internal/domain/repository"
	"zenvira/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	medicineRepo repository.MedicineRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   reviewRepo,
		medicineRepo: medicineRepo,
		logger:       logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByMedicine(ctx, medicineID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return reviews, nil
}

func (srv *reviewService) Create(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.CreateReviewInput,
) (*entity.Review, error) {
	if !entity.IsValidRating(input.Rating) {
		return nil, errors.WithStack(domainerrors.ErrInvalidRating)
	}

	if _, err := srv.medicineRepo.FindByID(ctx, input.MedicineID); err != nil {
		return nil, errors.Wrap(err, "failed to find reviewed medicine")
	}

	exists, err := srv.reviewRepo.Exists(ctx, principal.ID, input.MedicineID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrReviewAlreadyExists)
	}

	review := &entity.Review{
		UserID:     principal.ID,
		MedicineID: input.MedicineID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		UserName:   principal.Name,
	}
	// The unique (user, medicine) index still rejects a concurrent duplicate here.
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.String("review_id", review.ID.String()),
		slog.String("medicine_id", review.MedicineID.String()),
	)

	return review, nil
}

func (srv *reviewService) Update(
	ctx context.Context,
	principal *entity.Principal,
	id uuid.UUID,
	input *usecase.UpdateReviewInput,
) (*entity.Review, error) {
	review, err := srv.findMutable(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil {
		if !entity.IsValidRating(*input.Rating) {
			return nil, errors.WithStack(domainerrors.ErrInvalidRating)
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = strings.TrimSpace(*input.Comment)
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (srv *reviewService) Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if _, err := srv.findMutable(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// findMutable loads a review only its author or an admin may change.
func (srv *reviewService) findMutable(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.UserID != principal.ID && !principal.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("review belongs to another user"))
	}

	return review, nil
}
