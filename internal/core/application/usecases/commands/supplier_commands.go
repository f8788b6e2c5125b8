package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/supplier"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterSupplierCommandIsNotConstructed = errors.New(
		"RegisterSupplierCommand must be created via NewRegisterSupplierCommand constructor",
	)
	ErrCreateSupplierCommandIsNotConstructed = errors.New(
		"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
	)
	ErrUpdateSupplierCommandIsNotConstructed = errors.New(
		"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
	)
	ErrDeleteSupplierCommandIsNotConstructed = errors.New(
		"DeleteSupplierCommand must be created via NewDeleteSupplierCommand constructor",
	)
	ErrSetSupplierApprovalCommandIsNotConstructed = errors.New(
		"SetSupplierApprovalCommand must be created via NewSetSupplierApprovalCommand constructor",
	)
)

// RegisterSupplierCommand lets a logged-in user open an unapproved supplier profile.
type RegisterSupplierCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	details supplier.Details

	guard guard.ConstructorGuard
}

func NewRegisterSupplierCommand(userID int64, details supplier.Details) (RegisterSupplierCommand, error) {
	if err := validatePositiveID("user", userID); err != nil {
		return RegisterSupplierCommand{}, err
	}
	return RegisterSupplierCommand{userID: userID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterSupplierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSupplierCommandIsNotConstructed)
}

func (c RegisterSupplierCommand) UserID() int64 {
	return c.userID
}

func (c RegisterSupplierCommand) Details() supplier.Details {
	return c.details
}

// CreateSupplierCommand is the staff-side creation of a supplier without login.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	details  supplier.Details
	approved bool

	guard guard.ConstructorGuard
}

func NewCreateSupplierCommand(details supplier.Details, approved bool) CreateSupplierCommand {
	return CreateSupplierCommand{details: details, approved: approved, guard: guard.NewConstructorGuard()}
}

func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

func (c CreateSupplierCommand) Details() supplier.Details {
	return c.details
}

func (c CreateSupplierCommand) Approved() bool {
	return c.approved
}

// UpdateSupplierCommand replaces a supplier's details.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	details    supplier.Details

	guard guard.ConstructorGuard
}

func NewUpdateSupplierCommand(supplierID int64, details supplier.Details) (UpdateSupplierCommand, error) {
	if err := validatePositiveID("supplier", supplierID); err != nil {
		return UpdateSupplierCommand{}, err
	}
	return UpdateSupplierCommand{supplierID: supplierID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

func (c UpdateSupplierCommand) SupplierID() int64 {
	return c.supplierID
}

func (c UpdateSupplierCommand) Details() supplier.Details {
	return c.details
}

// DeleteSupplierCommand removes a supplier and, through the schema, its products.
type DeleteSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID int64

	guard guard.ConstructorGuard
}

func NewDeleteSupplierCommand(supplierID int64) (DeleteSupplierCommand, error) {
	if err := validatePositiveID("supplier", supplierID); err != nil {
		return DeleteSupplierCommand{}, err
	}
	return DeleteSupplierCommand{supplierID: supplierID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteSupplierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSupplierCommandIsNotConstructed)
}

func (c DeleteSupplierCommand) SupplierID() int64 {
	return c.supplierID
}

// SetSupplierApprovalCommand approves (approved=true) or revokes a supplier.
type SetSupplierApprovalCommand struct { //nolint:recvcheck //using for validation
	supplierID int64
	approved   bool

	guard guard.ConstructorGuard
}

func NewSetSupplierApprovalCommand(supplierID int64, approved bool) (SetSupplierApprovalCommand, error) {
	if err := validatePositiveID("supplier", supplierID); err != nil {
		return SetSupplierApprovalCommand{}, err
	}
	return SetSupplierApprovalCommand{supplierID: supplierID, approved: approved, guard: guard.NewConstructorGuard()}, nil
}

func (c SetSupplierApprovalCommand) Validate() error {
	return c.guard.Validate(ErrSetSupplierApprovalCommandIsNotConstructed)
}

func (c SetSupplierApprovalCommand) SupplierID() int64 {
	return c.supplierID
}

func (c SetSupplierApprovalCommand) Approved() bool {
	return c.approved
}
