package impl

import (
	"context"
	"log/slog"
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/usecase"
)

type demoCustomer struct {
	firstName, lastName, phone string
	line1, city, state, pin    string
}

var demoCustomers = []demoCustomer{
	{"Aarav", "Sharma", "9000000001", "12 MG Road", "Bengaluru", "KA", "560001"},
	{"Priya", "Mehta", "9000000002", "221B Baker St", "Mumbai", "MH", "400001"},
	{"Rahul", "Verma", "9000000003", "45 Park Ave", "Pune", "MH", "411001"},
	{"Sneha", "Iyer", "9000000004", "7 Beach Road", "Chennai", "TN", "600001"},
	{"Vikram", "Singh", "9000000005", "89 Lake View", "Delhi", "DL", "110001"},
	{"Neha", "Kapoor", "9000000006", "3 Green Park", "Jaipur", "RJ", "302001"},
}

type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		logger:    logger,
	}
}

// Seed inserts every demo customer whose phone is not on record yet,
// each with one primary address, in a single transaction.
func (srv *seedService) Seed(ctx context.Context) (int, error) {
	inserted := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()
		addressRepo := repoFactory.AddressRepo()

		for _, demo := range demoCustomers {
			_, err := customerRepo.FindCustomerByPhone(ctx, demo.phone)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrCustomerNotFound) {
				return err
			}

			email := strings.ToLower(demo.firstName) + "@example.com"
			customer := &entity.Customer{
				FirstName: demo.firstName,
				LastName:  demo.lastName,
				Phone:     demo.phone,
				Email:     &email,
			}
			if err := customerRepo.CreateCustomer(ctx, customer); err != nil {
				return err
			}

			if err := addressRepo.CreateAddress(ctx, &entity.Address{
				CustomerID: customer.ID,
				Line1:      demo.line1,
				City:       demo.city,
				State:      demo.state,
				Country:    entity.DefaultCountry,
				Pincode:    demo.pin,
				IsPrimary:  true,
			}); err != nil {
				return err
			}

			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "seed demo customers")
	}

	srv.logger.InfoContext(ctx, "Demo customers seeded", slog.Int("inserted", inserted))

	return inserted, nil
}
