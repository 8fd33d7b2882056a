// Package storage provides the data persistence layer for the tally ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quarryhq/tally/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidVendor      = errors.New("invalid vendor")
	ErrInvalidProject     = errors.New("invalid project")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction enforces the write-boundary invariants: required
// fields, a positive amount, and consistent payment state. Already-persisted
// violations are tolerated by readers, but nothing invalid gets written.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Type != model.TypeIncome && txn.Type != model.TypeExpense {
		return fmt.Errorf("%w: type must be income or expense", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Description) == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	if txn.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amount paid cannot be negative", ErrInvalidTransaction)
	}

	switch txn.PaymentStatus {
	case model.PaymentPaid:
		if !txn.AmountPaid.Equal(txn.Amount) {
			return fmt.Errorf("%w: paid transaction must have amount paid equal to amount", ErrInvalidTransaction)
		}
	case model.PaymentCredit:
		if !txn.AmountPaid.IsZero() {
			return fmt.Errorf("%w: credit transaction must have zero amount paid", ErrInvalidTransaction)
		}
	case model.PaymentPartial:
		if !txn.AmountPaid.IsPositive() || txn.AmountPaid.GreaterThanOrEqual(txn.Amount) {
			return fmt.Errorf("%w: partial payment must be between zero and the amount", ErrInvalidTransaction)
		}
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidTransaction, txn.PaymentStatus)
	}

	return nil
}

// validateVendor validates a vendor.
func validateVendor(vendor *model.Vendor) error {
	if vendor == nil {
		return fmt.Errorf("%w: vendor", ErrNilParameter)
	}
	if strings.TrimSpace(vendor.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidVendor)
	}
	switch vendor.Status {
	case model.VendorActive, model.VendorInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidVendor, vendor.Status)
	}
	return nil
}

// validateProject validates a project.
func validateProject(project *model.Project) error {
	if project == nil {
		return fmt.Errorf("%w: project", ErrNilParameter)
	}
	if strings.TrimSpace(project.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProject)
	}
	switch project.Status {
	case model.ProjectPlanning, model.ProjectActive, model.ProjectOnHold, model.ProjectCompleted:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidProject, project.Status)
	}
	if project.Progress < 0 || project.Progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidProject)
	}
	if project.Budget != nil && project.Budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidProject)
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidDateRange)
	}
	return nil
}
