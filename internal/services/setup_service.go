package services

type SetupUserRepository interface {
	CountUsers() (int64, error)
}

// SetupService answers whether the store is still empty, which is the guard
// the seeding workflow keys off.
type SetupService struct {
	users SetupUserRepository
}

func NewSetupService(users SetupUserRepository) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) RequiresInitialSeed() (bool, error) {
	usersCount, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return usersCount == 0, nil
}
