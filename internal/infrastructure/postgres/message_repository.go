package postgres

import (
	"context"
	"fmt"

	"github.com/sred/vitrine-api/internal/domain/entity"
	"github.com/sred/vitrine-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador de la bandeja de mensajes. Pasar pool o tx (Querier).
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste un mensaje entrante.
func (r *MessageRepo) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, name, phone, body, selected_items, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		message.ID, message.Name, message.Phone, message.Body, message.SelectedItems,
		message.Read, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// List devuelve una página de mensajes del más reciente al más antiguo.
func (r *MessageRepo) List(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, name, phone, body, selected_items, read, created_at
		FROM messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var m entity.Message
		err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Body, &m.SelectedItems, &m.Read, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// MarkRead marca un mensaje como leído o no leído. Devuelve false si no existía.
func (r *MessageRepo) MarkRead(ctx context.Context, id string, read bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE messages SET read = $2 WHERE id = $1`, id, read)
	if err != nil {
		return false, fmt.Errorf("mark message read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un mensaje. Devuelve false si no existía.
func (r *MessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
