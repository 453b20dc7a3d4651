package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/phenrril/crmcell/internal/domain"
)

const invalidPhoneMsg = "Invalid phone format. Use +1234567890 or 123-456-7890."

type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CustomerResult struct {
	OK       bool             `json:"ok"`
	Message  string           `json:"message,omitempty"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

type BulkError struct {
	Index    int      `json:"index"`
	Messages []string `json:"messages"`
}

type BulkResult struct {
	OK      bool              `json:"ok"`
	Created []domain.Customer `json:"created"`
	Errors  []BulkError       `json:"errors"`
}

type CustomerUC struct {
	Customers domain.CustomerRepo
}

// Create validates one customer and persists it. Expected validation
// problems come back in the result, never as an error; an error means the
// store itself failed.
func (uc *CustomerUC) Create(ctx context.Context, in CustomerInput) (*CustomerResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return &CustomerResult{OK: false, Message: "Name is required."}, nil
	}
	if email == "" {
		return &CustomerResult{OK: false, Message: "Email is required."}, nil
	}
	exists, err := uc.Customers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return &CustomerResult{OK: false, Message: "Email already exists."}, nil
	}
	if !domain.ValidPhone(in.Phone) {
		return &CustomerResult{OK: false, Message: invalidPhoneMsg}, nil
	}

	c := &domain.Customer{ID: uuid.New(), Name: name, Email: email, Phone: in.Phone}
	if err := uc.Customers.Create(ctx, c); err != nil {
		// A concurrent insert can slip past the exists check; the unique
		// index catches it.
		if errors.Is(err, domain.ErrConflict) {
			return &CustomerResult{OK: false, Message: "Email already exists."}, nil
		}
		return nil, err
	}
	return &CustomerResult{OK: true, Message: "Customer created successfully.", Customer: c}, nil
}

// BulkCreate processes candidates independently: a bad record is skipped
// with an indexed error and the rest continue. Each success is committed
// right away, so uniqueness checks see records created earlier in the same
// batch.
func (uc *CustomerUC) BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkResult, error) {
	res := &BulkResult{Created: []domain.Customer{}, Errors: []BulkError{}}

	for idx, in := range inputs {
		name := strings.TrimSpace(in.Name)
		email := strings.TrimSpace(in.Email)

		var msgs []string
		if name == "" {
			msgs = append(msgs, "Name is required.")
		}
		if email == "" {
			msgs = append(msgs, "Email is required.")
		} else {
			exists, err := uc.Customers.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				msgs = append(msgs, "Email already exists.")
			}
		}
		if !domain.ValidPhone(in.Phone) {
			msgs = append(msgs, invalidPhoneMsg)
		}

		if len(msgs) > 0 {
			res.Errors = append(res.Errors, BulkError{Index: idx, Messages: msgs})
			continue
		}

		c := domain.Customer{ID: uuid.New(), Name: name, Email: email, Phone: in.Phone}
		if err := uc.Customers.Create(ctx, &c); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				res.Errors = append(res.Errors, BulkError{Index: idx, Messages: []string{"Email already exists."}})
				continue
			}
			return nil, err
		}
		res.Created = append(res.Created, c)
	}

	res.OK = len(res.Errors) == 0
	return res, nil
}

func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}
