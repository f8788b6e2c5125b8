package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/pkg/errs"
)

// ErrSupplierProfileExists is returned when a user registers a second supplier profile.
var ErrSupplierProfileExists = errs.NewValueIsInvalidError("supplier profile already exists")

// RegisterSupplierCommandHandler opens a supplier profile for a user account.
type RegisterSupplierCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewRegisterSupplierCommandHandler(uowFactory AccountUoWFactory) RegisterSupplierCommandHandler {
	return RegisterSupplierCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new, unapproved supplier.
func (h RegisterSupplierCommandHandler) Handle(ctx context.Context, cmd RegisterSupplierCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	userID := cmd.UserID()
	s, err := supplier.NewSupplier(&userID, cmd.Details())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UserRepository().Get(ctx, userID); err != nil {
		return 0, err
	}

	repo := uow.SupplierRepository()
	_, err = repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return 0, ErrSupplierProfileExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	if err = repo.Add(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return s.ID(), nil
}

// CreateSupplierCommandHandler stores a supplier created by staff.
type CreateSupplierCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateSupplierCommandHandler(uowFactory CatalogUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{uowFactory: uowFactory}
}

func (h CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	s, err := supplier.NewSupplier(nil, cmd.Details())
	if err != nil {
		return 0, err
	}
	if cmd.Approved() {
		s.Approve()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SupplierRepository().Add(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return s.ID(), nil
}

// UpdateSupplierCommandHandler replaces a supplier's details.
type UpdateSupplierCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateSupplierCommandHandler(uowFactory CatalogUoWFactory) UpdateSupplierCommandHandler {
	return UpdateSupplierCommandHandler{uowFactory: uowFactory}
}

func (h UpdateSupplierCommandHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withSupplier(ctx, h.uowFactory, cmd.SupplierID(), func(s *supplier.Supplier) error {
		return s.UpdateDetails(cmd.Details())
	})
}

// SetSupplierApprovalCommandHandler approves or revokes a supplier.
type SetSupplierApprovalCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetSupplierApprovalCommandHandler(uowFactory CatalogUoWFactory) SetSupplierApprovalCommandHandler {
	return SetSupplierApprovalCommandHandler{uowFactory: uowFactory}
}

func (h SetSupplierApprovalCommandHandler) Handle(ctx context.Context, cmd SetSupplierApprovalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withSupplier(ctx, h.uowFactory, cmd.SupplierID(), func(s *supplier.Supplier) error {
		if cmd.Approved() {
			s.Approve()
		} else {
			s.Revoke()
		}
		return nil
	})
}

// DeleteSupplierCommandHandler removes a supplier.
type DeleteSupplierCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteSupplierCommandHandler(uowFactory CatalogUoWFactory) DeleteSupplierCommandHandler {
	return DeleteSupplierCommandHandler{uowFactory: uowFactory}
}

func (h DeleteSupplierCommandHandler) Handle(ctx context.Context, cmd DeleteSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SupplierRepository()
	if _, err := repo.Get(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func withSupplier(
	ctx context.Context, uowFactory CatalogUoWFactory, id int64, change func(*supplier.Supplier) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SupplierRepository()
	s, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = change(s); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
