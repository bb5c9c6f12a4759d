package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/application/usecase"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
)

// fakeMessageRepo bandeja en memoria, del más reciente al más antiguo.
type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
	// lastLimit y lastOffset capturan la paginación que llegó al repositorio.
	lastLimit  int
	lastOffset int
}

func (r *fakeMessageRepo) Create(_ context.Context, m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.messages = append([]*entity.Message{&cp}, r.messages...)
	return nil
}

func (r *fakeMessageRepo) List(_ context.Context, limit, offset int) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit, r.lastOffset = limit, offset
	if offset >= len(r.messages) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.messages) {
		end = len(r.messages)
	}
	out := make([]*entity.Message, 0, end-offset)
	for _, m := range r.messages[offset:end] {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(_ context.Context, id string, read bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			m.Read = read
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestMessageCreate_GuardaElSnapshotTalCual(t *testing.T) {
	uc := usecase.NewMessageUseCase(&fakeMessageRepo{})
	snapshot := `[{"id":"p1","type":"product","quantity":2}]`

	resp, err := uc.Create(context.Background(), dto.CreateMessageRequest{
		Name:          "Salma",
		Phone:         "0612345678",
		Message:       "Commande pour un mariage",
		SelectedItems: snapshot,
	})

	require.NoError(t, err)
	assert.Equal(t, snapshot, resp.SelectedItems)
	assert.False(t, resp.Read)
}

func TestMessageCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewMessageUseCase(&fakeMessageRepo{})

	_, err := uc.Create(context.Background(), dto.CreateMessageRequest{Name: "Salma", Phone: " ", Message: "hola"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMessageList_NormalizaLaPaginacion(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := usecase.NewMessageUseCase(repo)

	_, err := uc.List(context.Background(), -5, -3)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = uc.List(context.Background(), 10000, 20)
	require.NoError(t, err)
	assert.Equal(t, 200, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)
}

func TestMessageMarkRead_IdaYVuelta(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := usecase.NewMessageUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateMessageRequest{Name: "Salma", Phone: "0612345678", Message: "hola"})
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(context.Background(), resp.ID, true))
	list, err := uc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	require.NoError(t, uc.MarkRead(context.Background(), resp.ID, false))
	assert.ErrorIs(t, uc.MarkRead(context.Background(), "no-existe", true), domain.ErrNotFound)
}
