package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"planta/internal/domain/entity"
	"planta/internal/domain/repository"
	"planta/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// In-memory fakes standing in for the GORM repositories. They honor the
// same sentinel error contracts as the real implementations.

type fakePlantRepo struct {
	plants   map[int64]*entity.Plant
	nextID   int64
	inUseBy        string // when non-empty, Delete refuses with this relation
	failWith       error  // when set, every call fails with this error
	failDeleteWith error  // when set, only Delete fails with this error
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{plants: make(map[int64]*entity.Plant), nextID: 1}
}

func (r *fakePlantRepo) Create(_ context.Context, plant *entity.Plant) error {
	if r.failWith != nil {
		return r.failWith
	}
	plant.ID = r.nextID
	r.nextID++
	clone := *plant
	r.plants[plant.ID] = &clone

	return nil
}

func (r *fakePlantRepo) FindByID(_ context.Context, id int64) (*entity.Plant, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	plant, ok := r.plants[id]
	if !ok {
		return nil, repository.ErrPlantNotFound
	}
	clone := *plant

	return &clone, nil
}

func (r *fakePlantRepo) FindAll(_ context.Context) ([]*entity.Plant, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := make([]*entity.Plant, 0, len(r.plants))
	for _, plant := range r.plants {
		clone := *plant
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakePlantRepo) Update(_ context.Context, plant *entity.Plant) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.plants[plant.ID]; !ok {
		return repository.ErrPlantNotFound
	}
	clone := *plant
	r.plants[plant.ID] = &clone

	return nil
}

func (r *fakePlantRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.failDeleteWith != nil {
		return r.failDeleteWith
	}
	if _, ok := r.plants[id]; !ok {
		return repository.ErrPlantNotFound
	}
	if r.inUseBy != "" {
		return &repository.ReferenceConflictError{Relation: r.inUseBy}
	}
	delete(r.plants, id)

	return nil
}

func (r *fakePlantRepo) add(name string, price string) *entity.Plant {
	plant := &entity.Plant{
		ID:        r.nextID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  entity.CategoryIndoor,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.plants[plant.ID] = plant

	return plant
}

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*entity.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = r.nextID
	r.nextID++
	for i := range order.Details {
		order.Details[i].ID = int64(i + 1)
		order.Details[i].OrderID = order.ID
	}
	clone := *order
	r.orders[order.ID] = &clone

	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	clone := *order

	return &clone, nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID int64) ([]*entity.Order, error) {
	var result []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			clone := *order
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.Order, error) {
	all := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.orders, id)

	return nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

func (r *fakeUserRepo) add(name, email string) *entity.User {
	user := &entity.User{
		ID:    r.nextID,
		Name:  name,
		Email: email,
		Role:  entity.RoleCustomer,
	}
	r.nextID++
	r.users[user.ID] = user

	return user
}

type fakeScheduleRepo struct {
	schedules map[int64]*entity.MaintenanceSchedule
	nextID    int64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[int64]*entity.MaintenanceSchedule), nextID: 1}
}

func (r *fakeScheduleRepo) Create(_ context.Context, schedule *entity.MaintenanceSchedule) error {
	schedule.ID = r.nextID
	r.nextID++
	clone := *schedule
	r.schedules[schedule.ID] = &clone

	return nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, id int64) (*entity.MaintenanceSchedule, error) {
	schedule, ok := r.schedules[id]
	if !ok {
		return nil, repository.ErrScheduleNotFound
	}
	clone := *schedule

	return &clone, nil
}

func (r *fakeScheduleRepo) FindByUser(_ context.Context, userID int64) ([]*entity.MaintenanceSchedule, error) {
	var result []*entity.MaintenanceSchedule
	for _, schedule := range r.schedules {
		if schedule.UserID == userID {
			clone := *schedule
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeScheduleRepo) FindByPlant(_ context.Context, plantID int64) ([]*entity.MaintenanceSchedule, error) {
	var result []*entity.MaintenanceSchedule
	for _, schedule := range r.schedules {
		if schedule.PlantID == plantID {
			clone := *schedule
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeScheduleRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.MaintenanceSchedule, error) {
	var result []*entity.MaintenanceSchedule
	for _, schedule := range r.schedules {
		if !schedule.ScheduleDate.Before(start) && !schedule.ScheduleDate.After(end) {
			clone := *schedule
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeScheduleRepo) FindAll(_ context.Context) ([]*entity.MaintenanceSchedule, error) {
	all := make([]*entity.MaintenanceSchedule, 0, len(r.schedules))
	for _, schedule := range r.schedules {
		clone := *schedule
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeScheduleRepo) UpdateStatus(_ context.Context, id int64, status entity.MaintenanceStatus) error {
	schedule, ok := r.schedules[id]
	if !ok {
		return repository.ErrScheduleNotFound
	}
	schedule.Status = status

	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.schedules[id]; !ok {
		return repository.ErrScheduleNotFound
	}
	delete(r.schedules, id)

	return nil
}

type fakeSuggestionRepo struct {
	suggestions map[int64]*entity.Suggestion
	nextID      int64
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: make(map[int64]*entity.Suggestion), nextID: 1}
}

func (r *fakeSuggestionRepo) Create(_ context.Context, suggestion *entity.Suggestion) error {
	suggestion.ID = r.nextID
	r.nextID++
	clone := *suggestion
	r.suggestions[suggestion.ID] = &clone

	return nil
}

func (r *fakeSuggestionRepo) FindByID(_ context.Context, id int64) (*entity.Suggestion, error) {
	suggestion, ok := r.suggestions[id]
	if !ok {
		return nil, repository.ErrSuggestionNotFound
	}
	clone := *suggestion

	return &clone, nil
}

func (r *fakeSuggestionRepo) FindByPlant(_ context.Context, plantID int64) ([]*entity.Suggestion, error) {
	var result []*entity.Suggestion
	for _, suggestion := range r.suggestions {
		if suggestion.PlantID == plantID {
			clone := *suggestion
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeSuggestionRepo) FindAll(_ context.Context) ([]*entity.Suggestion, error) {
	all := make([]*entity.Suggestion, 0, len(r.suggestions))
	for _, suggestion := range r.suggestions {
		clone := *suggestion
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeSuggestionRepo) Update(_ context.Context, suggestion *entity.Suggestion) error {
	if _, ok := r.suggestions[suggestion.ID]; !ok {
		return repository.ErrSuggestionNotFound
	}
	clone := *suggestion
	r.suggestions[suggestion.ID] = &clone

	return nil
}

func (r *fakeSuggestionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.suggestions[id]; !ok {
		return repository.ErrSuggestionNotFound
	}
	delete(r.suggestions, id)

	return nil
}

type fakeArticleRepo struct {
	articles map[int64]*entity.Article
	nextID   int64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[int64]*entity.Article), nextID: 1}
}

func (r *fakeArticleRepo) Create(_ context.Context, article *entity.Article) error {
	article.ID = r.nextID
	r.nextID++
	clone := *article
	r.articles[article.ID] = &clone

	return nil
}

func (r *fakeArticleRepo) FindByID(_ context.Context, id int64) (*entity.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, repository.ErrArticleNotFound
	}
	clone := *article

	return &clone, nil
}

func (r *fakeArticleRepo) FindAll(_ context.Context) ([]*entity.Article, error) {
	all := make([]*entity.Article, 0, len(r.articles))
	for _, article := range r.articles {
		clone := *article
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeArticleRepo) Search(_ context.Context, keyword string) ([]*entity.Article, error) {
	needle := strings.ToLower(keyword)
	var result []*entity.Article
	for _, article := range r.articles {
		if strings.Contains(strings.ToLower(article.Title), needle) ||
			strings.Contains(strings.ToLower(article.Content), needle) {
			clone := *article
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeArticleRepo) Update(_ context.Context, article *entity.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return repository.ErrArticleNotFound
	}
	clone := *article
	r.articles[article.ID] = &clone

	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.articles[id]; !ok {
		return repository.ErrArticleNotFound
	}
	delete(r.articles, id)

	return nil
}

// fakeTxManager runs the callback directly against the given repositories,
// without any real transaction.
type fakeTxManager struct {
	orderRepo repository.OrderRepository
	plantRepo repository.PlantRepository
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) NewOrderRepository() repository.OrderRepository {
	return m.orderRepo
}

func (m *fakeTxManager) NewPlantRepository() repository.PlantRepository {
	return m.plantRepo
}

// fakeHasher marks hashes with a recognizable prefix so tests can assert
// rehashing without bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) Issue(userID int64, role entity.UserRole) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func (fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}
