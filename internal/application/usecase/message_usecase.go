package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sred/vitrine-api/internal/application/dto"
	"github.com/sred/vitrine-api/internal/domain"
	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

// Límites de paginación de la bandeja de mensajes.
const (
	messagePageDefault = 50
	messagePageMax     = 200
)

// MessageUseCase bandeja de mensajes del formulario de contacto: la creación
// es pública, la lectura y la gestión son de administración.
type MessageUseCase struct {
	repo repository.MessageRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(repo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

// Create guarda un mensaje entrante. Nombre y cuerpo son obligatorios, el
// teléfono necesita al menos 8 caracteres; SelectedItems se guarda tal cual,
// opaco para el servidor.
func (uc *MessageUseCase) Create(ctx context.Context, in dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Phone)) < 8 {
		return nil, domain.ErrInvalidInput
	}
	message := &entity.Message{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Phone:         in.Phone,
		Body:          in.Message,
		SelectedItems: in.SelectedItems,
		Read:          false,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return toMessageResponse(message), nil
}

// List devuelve una página de mensajes del más reciente al más antiguo.
// Los límites fuera de rango se normalizan en lugar de fallar.
func (uc *MessageUseCase) List(ctx context.Context, limit, offset int) ([]dto.MessageResponse, error) {
	if limit <= 0 {
		limit = messagePageDefault
	}
	if limit > messagePageMax {
		limit = messagePageMax
	}
	if offset < 0 {
		offset = 0
	}
	messages, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, *toMessageResponse(m))
	}
	return out, nil
}

// MarkRead marca un mensaje como leído o no leído.
func (uc *MessageUseCase) MarkRead(ctx context.Context, id string, read bool) error {
	found, err := uc.repo.MarkRead(ctx, id, read)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un mensaje de la bandeja.
func (uc *MessageUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         m.Phone,
		Message:       m.Body,
		SelectedItems: m.SelectedItems,
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}
