package routes

import (
	"context"
	"log"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase"
	"sistemaos/internal/usecase/interfaces"
)

// seedDefaultUsers creates the bootstrap accounts on an empty user table so a
// fresh deployment is immediately usable. A non-empty table skips the seed, so
// repeated boots never duplicate accounts.
func seedDefaultUsers(ctx context.Context, users usecase.IUserUseCase, repo interfaces.IUserRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Printf("Skipping user seed, count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []usecase.UserCreateInput{
		{
			Name:     "Fernando",
			Email:    "fernando@sistemaos.com",
			Password: "123456",
			Role:     entities.UserRoleAdmin,
			Phone:    "(11) 88888-8888",
		},
		{
			Name:     "João Pedro",
			Email:    "joao.pedro@sistemaos.com",
			Password: "123456",
			Role:     entities.UserRoleOperator,
			Phone:    "(11) 99999-9999",
		},
	}

	for _, in := range defaults {
		user, err := users.Create(ctx, in)
		if err != nil {
			log.Printf("Failed to seed user %s: %v", in.Email, err)
			continue
		}
		log.Printf("Seeded default %s user: %s", user.Role, user.Email)
	}
}
