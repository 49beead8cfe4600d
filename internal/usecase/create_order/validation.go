package create_order

import (
	"fmt"
	"strings"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}
	if len(req.Items) > domain.MaxOrderItems {
		return fmt.Errorf("%w: too many items, limit is %d", ErrInvalidInput, domain.MaxOrderItems)
	}
	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item %d: productID must be positive", ErrInvalidInput, i)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d: name is required", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", ErrInvalidInput, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d: unit price must not be negative", ErrInvalidInput, i)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long, limit is %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PickupDate.IsZero() {
		return fmt.Errorf("%w: pickup date is required", ErrInvalidInput)
	}
	if req.PickupTime.IsZero() {
		return fmt.Errorf("%w: pickup time is required", ErrInvalidInput)
	}

	return nil
}
