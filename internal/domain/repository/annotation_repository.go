package repository

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// NoteRepository define el puerto de persistencia para Note.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
}

// TagRepository define el puerto de persistencia para Tag.
type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
}

// ReminderRepository define el puerto de persistencia para Reminder.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
}
