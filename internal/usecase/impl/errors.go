package impl

import (
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
)

// translateRepoError maps repository sentinels onto their AppError and wraps
// anything unknown with the failed operation.
func translateRepoError(err error, op string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrCustomerNotFound):
		return domainerrors.ErrCustomerNotFound
	case errors.Is(err, repository.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, op)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
