package auth_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
// Lookups cuenta las búsquedas por email para verificar que la validación de
// forma rechaza antes de tocar el repositorio.
type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*entity.User // por id, en orden de inserción vía order
	order   []string
	Lookups int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) clone(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.ResetToken != nil {
		tok := *u.ResetToken
		cp.ResetToken = &tok
	}
	if u.ResetTokenExpires != nil {
		exp := *u.ResetTokenExpires
		cp.ResetTokenExpires = &exp
	}
	return &cp
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = r.clone(user)
	r.order = append(r.order, user.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clone(r.users[id]), nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return r.clone(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups++
	for _, u := range r.users {
		if u.Email == email {
			return r.clone(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			out = append(out, r.clone(u))
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("usuario no existe")
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, id string, token *string, expires *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("usuario no existe")
	}
	u.ResetToken = token
	u.ResetTokenExpires = expires
	return nil
}

func (r *fakeUserRepo) ResetPassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("usuario no existe")
	}
	u.PasswordHash = hash
	u.ResetToken = nil
	u.ResetTokenExpires = nil
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// mustGet acceso directo para asserts sobre el estado persistido.
func (r *fakeUserRepo) mustGet(id string) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clone(r.users[id])
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTx ejecuta el callback directamente sobre el repo en memoria.
type fakeTx struct {
	repo *fakeUserRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(users repository.UserRepository) error) error {
	return fn(t.repo)
}

// fakeMailer registra los envíos; los errores se inyectan por campo.
type fakeMailer struct {
	mu         sync.Mutex
	ResetErr   error
	WelcomeErr error
	ResetSent  []sentMail
	Welcomes   []string
}

type sentMail struct {
	To   string
	Code string
}

func (m *fakeMailer) SendResetCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ResetErr != nil {
		return m.ResetErr
	}
	m.ResetSent = append(m.ResetSent, sentMail{To: to, Code: code})
	return nil
}

func (m *fakeMailer) SendWelcome(to, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WelcomeErr != nil {
		return m.WelcomeErr
	}
	m.Welcomes = append(m.Welcomes, to)
	return nil
}

func (m *fakeMailer) welcomeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Welcomes)
}

func (m *fakeMailer) lastReset() (sentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ResetSent) == 0 {
		return sentMail{}, false
	}
	return m.ResetSent[len(m.ResetSent)-1], true
}
