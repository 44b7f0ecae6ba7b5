package seed

import (
	"context"
	"fmt"

	"entraide/internal/store"
	"entraide/internal/utils"
	"entraide/pkg/types"
)

type fakeUserSeed struct {
	ID    string
	Email string
	Name  string
}

var fakeUsers = []fakeUserSeed{
	{ID: "11111111-1111-1111-1111-111111111111", Email: "amina.benali+seed1@example.com", Name: "Amina Benali"},
	{ID: "22222222-2222-2222-2222-222222222222", Email: "youssef.elamrani+seed2@example.com", Name: "Youssef El Amrani"},
	{ID: "33333333-3333-3333-3333-333333333333", Email: "fatima.zahra+seed3@example.com", Name: "Fatima Zahra"},
	{ID: "44444444-4444-4444-4444-444444444444", Email: "karim.tazi+seed4@example.com", Name: "Karim Tazi"},
	{ID: "55555555-5555-5555-5555-555555555555", Email: "salma.idrissi+seed5@example.com", Name: "Salma Idrissi"},
}

func fakeUserIDs() []string {
	ids := make([]string, 0, len(fakeUsers))
	for _, user := range fakeUsers {
		ids = append(ids, user.ID)
	}
	return ids
}

func SeedFakeUsers(ctx context.Context, userRepo *store.UserRepository) error {
	for _, fakeUser := range fakeUsers {
		user := &types.User{
			ID:    fakeUser.ID,
			Email: utils.StringPtr(fakeUser.Email),
			Name:  utils.StringPtr(fakeUser.Name),
		}

		if err := userRepo.UpsertUser(ctx, user); err != nil {
			return fmt.Errorf("failed to upsert fake user %s: %w", fakeUser.ID, err)
		}
	}

	fmt.Printf("Fake users seeded: %d upserted\n", len(fakeUsers))
	return nil
}
