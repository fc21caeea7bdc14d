package users_testing

import (
	"fmt"
	"sort"
	"sync"
	"time"

	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	users_services "workforce/internal/features/users/services"
)

// MemoryUserRepository implements users_interfaces.UserRepository for tests
// that should run without Postgres.
type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[int64]*users_models.User
	nextID int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]*users_models.User)}
}

func (r *MemoryUserRepository) CreateUser(user *users_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return fmt.Errorf("duplicate key value violates unique constraint on username")
		}
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate key value violates unique constraint on email")
		}
	}

	r.nextID++
	user.ID = r.nextID

	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *MemoryUserRepository) GetUserByID(userID int64) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetUserByUsername(username string) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemoryUserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemoryUserRepository) GetAllUsers() ([]*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*users_models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *MemoryUserRepository) CountUsersByRole(role users_enums.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}

	return count, nil
}

// ActivityWriterStub satisfies the per-feature ActivityWriter interfaces.
type ActivityWriterStub struct{}

func (ActivityWriterStub) WriteActivity(string, string, *int64, *int64) {}

// NewTestUserService returns a user service backed by an in-memory
// repository, with the activity writer stubbed out.
func NewTestUserService() (*users_services.UserService, *MemoryUserRepository) {
	repository := NewMemoryUserRepository()
	service := users_services.NewUserService(repository)
	service.SetActivityWriter(ActivityWriterStub{})

	return service, repository
}

// CreateTestUser inserts a user with the given role and returns it together
// with a valid bearer token. The stored hash is not a real password; tests
// authenticate with the token, not credentials.
func CreateTestUser(
	service *users_services.UserService,
	repository *MemoryUserRepository,
	role users_enums.UserRole,
) (*users_models.User, string) {
	user := &users_models.User{
		Username:       fmt.Sprintf("%s-%d", role, time.Now().UnixNano()),
		HashedPassword: "$2a$10$test",
		Name:           "Test " + string(role),
		Email:          fmt.Sprintf("%s-%d@test.local", role, time.Now().UnixNano()),
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := repository.CreateUser(user); err != nil {
		panic(err)
	}

	token, err := service.GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return user, token
}
