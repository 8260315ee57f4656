package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "librarium/internal/delivery/context"
	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	"librarium/internal/domain/service"
	"librarium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rentalService implements the RentalUsecase interface.
//
// Opening a rental writes three rows in one transaction: the rental insert,
// the item row flipping to unavailable, and the user row's counter going up.
// Closing one mirrors those writes. The in-memory indexes are only touched
// after the transaction commits, and always through the catalog's
// SetAvailability path and the member cache refresh.
type rentalService struct {
	txManager       repository.TransactionManager
	rentalRepo      repository.RentalRepository
	catalog         usecase.CatalogUsecase
	members         usecase.MemberUsecase
	receiptRenderer service.ReceiptRenderer
	logger          *slog.Logger
}

// RentalServiceParams holds dependencies for RentalService, injected by Fx.
type RentalServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	RentalRepo      repository.RentalRepository
	Catalog         usecase.CatalogUsecase
	Members         usecase.MemberUsecase
	ReceiptRenderer service.ReceiptRenderer
	Logger          *slog.Logger
}

// NewRentalService is the constructor for rentalService. It receives all dependencies as interfaces.
func NewRentalService(params RentalServiceParams) usecase.RentalUsecase {
	return &rentalService{
		txManager:       params.TxManager,
		rentalRepo:      params.RentalRepo,
		catalog:         params.Catalog,
		members:         params.Members,
		receiptRenderer: params.ReceiptRenderer,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rentalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRental opens a rental for the user on the requested copy, or on an
// available copy of the same title when the requested one is out.
func (srv *rentalService) CreateRental(ctx context.Context, input *usecase.CreateRentalInput) (*entity.Rental, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create rental input is nil")
	}
	if input.UserID <= 0 || input.ItemID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "create rental")
	}

	srv.log(ctx).Info("Opening rental", slog.Any("userID", input.UserID), slog.Any("itemID", input.ItemID))

	user, err := srv.members.GetUserByID(ctx, input.UserID, false)
	if err != nil {
		return nil, err
	}
	// Advisory eligibility read; the counter guard inside the transaction
	// has the final say on the quota.
	if !user.IsAllowedToRent() {
		refusal := &domainerrors.RentalNotAllowedError{
			Reason:         rentalRefusalReason(user),
			LateFee:        user.LateFee,
			CurrentRentals: user.CurrentRentals,
			AllowedRentals: user.AllowedRentals,
		}
		srv.log(ctx).Warn("Rental refused", slog.Any("userID", user.ID), slog.String("reason", refusal.Reason))

		return nil, refusal
	}

	copyToRent, err := srv.catalog.FindRentableCopy(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Truncate(time.Second)
	rental := &entity.Rental{
		UserID:     user.ID,
		ItemID:     copyToRent.ID,
		Username:   user.Username,
		ItemTitle:  copyToRent.Title,
		ItemType:   copyToRent.Type,
		RentalDate: now,
		DueDate:    now.AddDate(0, 0, copyToRent.AllowedRentalDays),
		ReceiptRef: uuid.New().String(),
	}
	rental.Receipt = srv.receiptRenderer.Render(rental)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The availability index said the copy was free; confirm against
		// the rental rows before writing.
		if _, err := repoFactory.RentalRepo().FindActiveByItem(ctx, copyToRent.ID); err == nil {
			return domainerrors.ErrNoAvailableCopy.WrapMessage(copyToRent.Title)
		} else if !errors.Is(err, repository.ErrRentalNotFound) {
			return errors.Wrap(err, "failed to check for an active rental on the copy")
		}

		if err := repoFactory.RentalRepo().Create(ctx, rental); err != nil {
			return errors.Wrap(err, "failed to create rental")
		}
		if err := repoFactory.ItemRepo().UpdateAvailability(ctx, copyToRent.ID, false); err != nil {
			return errors.Wrap(err, "failed to mark item unavailable")
		}
		if err := repoFactory.UserRepo().AdjustRentalCount(ctx, user.ID, 1); err != nil {
			return errors.Wrap(err, "failed to increment rental count")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRentalLimitReached) {
			// A concurrent rental claimed the last slot between the
			// eligibility read and the counter update.
			refusal := &domainerrors.RentalNotAllowedError{
				Reason:         "rental quota exhausted",
				LateFee:        user.LateFee,
				CurrentRentals: user.CurrentRentals,
				AllowedRentals: user.AllowedRentals,
			}
			srv.log(ctx).Warn("Rental refused", slog.Any("userID", user.ID), slog.String("reason", refusal.Reason))

			return nil, refusal
		}
		if errors.Is(err, domainerrors.ErrNoAvailableCopy) {
			srv.log(ctx).Warn("Rental refused", slog.Any("itemID", copyToRent.ID), slog.String("reason", "copy already rented"))

			return nil, err
		}

		srv.log(ctx).Error("Failed to execute rental create transaction", slog.Any("userID", user.ID), slog.Any("itemID", copyToRent.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rental create transaction")
	}

	// The transaction is committed; bring the indexes in line.
	srv.catalog.SetAvailability(copyToRent.Title, false)
	srv.refreshMember(ctx, user.ID)

	srv.log(ctx).Debug("Rental opened", slog.Any("rentalID", rental.ID), slog.Any("itemID", copyToRent.ID))

	return rental, nil
}

// ReturnRental closes the given rental, setting its return date and releasing
// the copy and the user's rental slot.
func (srv *rentalService) ReturnRental(ctx context.Context, rental *entity.Rental) (*entity.Rental, error) {
	stored, err := srv.loadRentalForReturn(ctx, rental)
	if err != nil {
		return nil, errors.Wrap(err, "rental return failed")
	}

	now := time.Now().Truncate(time.Second)
	stored.ReturnDate = &now

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RentalRepo().Update(ctx, stored); err != nil {
			return errors.Wrap(err, "failed to close rental")
		}
		if err := repoFactory.ItemRepo().UpdateAvailability(ctx, stored.ItemID, true); err != nil {
			return errors.Wrap(err, "failed to mark item available")
		}
		if err := repoFactory.UserRepo().AdjustRentalCount(ctx, stored.UserID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement rental count")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute rental return transaction", slog.Any("rentalID", stored.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "rental return failed")
	}

	srv.catalog.SetAvailability(stored.ItemTitle, true)
	srv.refreshMember(ctx, stored.UserID)

	srv.log(ctx).Debug("Rental returned", slog.Any("rentalID", stored.ID))

	return stored, nil
}

// loadRentalForReturn validates the return request and loads the stored rental.
func (srv *rentalService) loadRentalForReturn(ctx context.Context, rental *entity.Rental) (*entity.Rental, error) {
	if rental == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("rental is nil")
	}
	if rental.ID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "return rental")
	}

	stored, err := srv.rentalRepo.FindByID(ctx, rental.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("rental does not exist")
		}

		return nil, errors.Wrap(err, "failed to find rental")
	}
	if !stored.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrRentalAlreadyReturned, "return rental")
	}

	return stored, nil
}

// UpdateRental persists changes to the rental's due date, return date or late
// fee. Every other field is immutable once the rental exists; a return date
// can be corrected but neither set for the first time nor cleared here.
func (srv *rentalService) UpdateRental(ctx context.Context, rental *entity.Rental) (*entity.Rental, error) {
	if rental == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("rental is nil")
	}
	if rental.ID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "update rental")
	}

	stored, err := srv.rentalRepo.FindByID(ctx, rental.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("rental does not exist")
		}

		return nil, errors.Wrap(err, "failed to find rental")
	}

	if err := checkImmutableRentalFields(stored, rental); err != nil {
		return nil, err
	}

	stored.DueDate = rental.DueDate.Truncate(time.Second)
	if rental.ReturnDate != nil {
		returned := rental.ReturnDate.Truncate(time.Second)
		stored.ReturnDate = &returned
	}
	stored.LateFee = rental.LateFee

	if err := srv.rentalRepo.Update(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to update rental")
	}

	return stored, nil
}

// checkImmutableRentalFields rejects changes to anything the rental froze at
// creation time, plus the two forbidden return-date transitions.
func checkImmutableRentalFields(stored, incoming *entity.Rental) error {
	switch {
	case incoming.UserID != 0 && incoming.UserID != stored.UserID:
		return domainerrors.ErrImmutableField.WrapMessage("userID")
	case incoming.ItemID != 0 && incoming.ItemID != stored.ItemID:
		return domainerrors.ErrImmutableField.WrapMessage("itemID")
	case incoming.Username != "" && incoming.Username != stored.Username:
		return domainerrors.ErrImmutableField.WrapMessage("username snapshot")
	case incoming.ItemTitle != "" && incoming.ItemTitle != stored.ItemTitle:
		return domainerrors.ErrImmutableField.WrapMessage("item title snapshot")
	case incoming.ItemType != "" && incoming.ItemType != stored.ItemType:
		return domainerrors.ErrImmutableField.WrapMessage("item type snapshot")
	case !incoming.RentalDate.IsZero() && !incoming.RentalDate.Equal(stored.RentalDate):
		return domainerrors.ErrImmutableField.WrapMessage("rental date")
	case incoming.Receipt != "" && incoming.Receipt != stored.Receipt:
		return domainerrors.ErrImmutableField.WrapMessage("receipt")
	case incoming.ReceiptRef != "" && incoming.ReceiptRef != stored.ReceiptRef:
		return domainerrors.ErrImmutableField.WrapMessage("receipt reference")
	case stored.ReturnDate == nil && incoming.ReturnDate != nil:
		return domainerrors.ErrImmutableField.WrapMessage("return date is set by returning the rental")
	case stored.ReturnDate != nil && incoming.ReturnDate == nil:
		return domainerrors.ErrImmutableField.WrapMessage("return date cannot be cleared")
	}

	return nil
}

// DeleteRental soft-deletes a rental. Repeating the delete is a no-op.
func (srv *rentalService) DeleteRental(ctx context.Context, id int64) error {
	stored, err := srv.GetRentalByID(ctx, id)
	if err != nil {
		return err
	}
	if stored.Deleted {
		return nil
	}

	if err := srv.rentalRepo.SetDeleted(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to soft-delete rental")
	}

	srv.log(ctx).Info("Rental soft-deleted", slog.Any("rentalID", id))

	return nil
}

// RecoverRental reverses a soft delete. Recovering a live rental is a no-op.
func (srv *rentalService) RecoverRental(ctx context.Context, id int64) error {
	stored, err := srv.GetRentalByID(ctx, id)
	if err != nil {
		return err
	}
	if !stored.Deleted {
		return nil
	}

	if err := srv.rentalRepo.SetDeleted(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to recover rental")
	}

	srv.log(ctx).Info("Rental recovered", slog.Any("rentalID", id))

	return nil
}

// HardDeleteRental permanently removes a rental. Purging an active rental
// releases the copy and the user's rental slot in the same transaction, so
// the availability and counter bookkeeping stays consistent.
func (srv *rentalService) HardDeleteRental(ctx context.Context, id int64) error {
	stored, err := srv.GetRentalByID(ctx, id)
	if err != nil {
		return err
	}

	wasActive := stored.IsActive()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if wasActive {
			if err := repoFactory.ItemRepo().UpdateAvailability(ctx, stored.ItemID, true); err != nil {
				return errors.Wrap(err, "failed to release item")
			}
			if err := repoFactory.UserRepo().AdjustRentalCount(ctx, stored.UserID, -1); err != nil {
				return errors.Wrap(err, "failed to decrement rental count")
			}
		}

		return repoFactory.RentalRepo().HardDelete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute rental hard delete transaction", slog.Any("rentalID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute rental hard delete transaction")
	}

	if wasActive {
		srv.catalog.SetAvailability(stored.ItemTitle, true)
		srv.refreshMember(ctx, stored.UserID)
	}

	srv.log(ctx).Info("Rental hard-deleted", slog.Any("rentalID", id))

	return nil
}

// OverdueRentals lists active rentals whose due date has passed.
func (srv *rentalService) OverdueRentals(ctx context.Context) ([]*entity.Rental, error) {
	overdue, err := srv.rentalRepo.FindOverdue(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find overdue rentals")
	}

	return overdue, nil
}

// GetRentalByID retrieves a single rental, soft-deleted or not.
func (srv *rentalService) GetRentalByID(ctx context.Context, id int64) (*entity.Rental, error) {
	if id <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "get rental by id")
	}

	stored, err := srv.rentalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("rental does not exist")
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return stored, nil
}

// ListRentalsByUser retrieves all rentals of one user, newest first.
func (srv *rentalService) ListRentalsByUser(ctx context.Context, userID int64) ([]*entity.Rental, error) {
	if userID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "list rentals by user")
	}

	rentals, err := srv.rentalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rentals by user")
	}

	return rentals, nil
}

// RenderReceiptQR produces a PNG QR code for the rental's receipt.
func (srv *rentalService) RenderReceiptQR(ctx context.Context, rentalID int64) ([]byte, error) {
	rental, err := srv.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	png, err := srv.receiptRenderer.RenderQR(rental)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render receipt qr")
	}

	return png, nil
}

// refreshMember reloads the member cache after a counter change. A refresh
// failure only degrades cache freshness, so it is logged and swallowed.
func (srv *rentalService) refreshMember(ctx context.Context, userID int64) {
	if err := srv.members.RefreshUser(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to refresh member cache", slog.Any("userID", userID), slog.Any("error", err))
	}
}

// rentalRefusalReason names the first eligibility rule the user trips.
func rentalRefusalReason(user *entity.User) string {
	switch {
	case !user.Type.CanEverRent():
		return "user type never rents"
	case user.LateFee > 0:
		return "outstanding late fee"
	case user.CurrentRentals >= user.AllowedRentals:
		return "rental quota exhausted"
	default:
		return "not allowed to rent"
	}
}
