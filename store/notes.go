package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"postit-board/models"

	"github.com/jmoiron/sqlx"
)

// Board defaults for fields omitted on creation.
const (
	DefaultTitle     = "New Note"
	DefaultColor     = "#ffff99"
	DefaultPositionX = 100
	DefaultPositionY = 100
	DefaultWidth     = 250
	DefaultHeight    = 200
)

// NoteFields carries the caller-supplied fields for creating a note. Nil
// fields take the board defaults. There is deliberately no owner field: the
// owner always comes from the authenticated admin id.
type NoteFields struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Color     *string `json:"color"`
	PositionX *int    `json:"positionX"`
	PositionY *int    `json:"positionY"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
}

// NotePatch maps field names to new values for a partial update. Only the
// fields present change; anything outside patchColumns is rejected, which
// also keeps id and admin_id out of reach of a forged payload.
type NotePatch map[string]any

var patchColumns = map[string]struct {
	column  string
	numeric bool
}{
	"title":     {"title", false},
	"content":   {"content", false},
	"color":     {"color", false},
	"positionX": {"position_x", true},
	"positionY": {"position_y", true},
	"width":     {"width", true},
	"height":    {"height", true},
}

// patchValue checks a patch value against its field's type and returns the
// value to bind. JSON numbers arrive as float64; anything else unexpected
// (null included) is rejected up front so bad input never reaches the
// database as a storage failure.
func patchValue(field string, numeric bool, value any) (any, error) {
	switch v := value.(type) {
	case string:
		if numeric {
			return nil, validationf("note field %q must be an integer", field)
		}
		return v, nil
	case float64:
		if !numeric {
			return nil, validationf("note field %q must be a string", field)
		}
		if v != math.Trunc(v) {
			return nil, validationf("note field %q must be an integer", field)
		}
		return int(v), nil
	case int:
		if !numeric {
			return nil, validationf("note field %q must be a string", field)
		}
		return v, nil
	default:
		if numeric {
			return nil, validationf("note field %q must be an integer", field)
		}
		return nil, validationf("note field %q must be a string", field)
	}
}

type NoteStore struct {
	db *sqlx.DB
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db}
}

// List returns every note owned by ownerID in creation order.
func (s *NoteStore) List(ownerID int) ([]models.Note, error) {
	notes := []models.Note{}
	err := s.db.Select(&notes,
		`SELECT id, title, content, color, position_x, position_y, width, height, admin_id
		 FROM notes WHERE admin_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create inserts a note owned by ownerID, filling in defaults for omitted
// fields.
func (s *NoteStore) Create(ownerID int, fields NoteFields) (*models.Note, error) {
	note := models.Note{
		Title:     DefaultTitle,
		Content:   "",
		Color:     DefaultColor,
		PositionX: DefaultPositionX,
		PositionY: DefaultPositionY,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		AdminID:   ownerID,
	}
	if fields.Title != nil {
		note.Title = *fields.Title
	}
	if fields.Content != nil {
		note.Content = *fields.Content
	}
	if fields.Color != nil {
		note.Color = *fields.Color
	}
	if fields.PositionX != nil {
		note.PositionX = *fields.PositionX
	}
	if fields.PositionY != nil {
		note.PositionY = *fields.PositionY
	}
	if fields.Width != nil {
		note.Width = *fields.Width
	}
	if fields.Height != nil {
		note.Height = *fields.Height
	}

	res, err := s.db.Exec(
		`INSERT INTO notes (title, content, color, position_x, position_y, width, height, admin_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		note.Title, note.Content, note.Color, note.PositionX, note.PositionY,
		note.Width, note.Height, note.AdminID)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	note.ID = int(id)

	return &note, nil
}

// Update applies patch to the note with id owned by ownerID. A note owned by
// a different admin reports ErrNotFound, same as a missing one. An empty
// patch is a legal no-op.
func (s *NoteStore) Update(ownerID, id int, patch NotePatch) error {
	setClauses := make([]string, 0, len(patch))
	args := make([]any, 0, len(patch)+2)
	for field, value := range patch {
		col, ok := patchColumns[field]
		if !ok {
			return validationf("unknown note field %q", field)
		}
		bound, err := patchValue(field, col.numeric, value)
		if err != nil {
			return err
		}
		setClauses = append(setClauses, col.column+" = ?")
		args = append(args, bound)
	}

	if len(setClauses) == 0 {
		var one int
		err := s.db.Get(&one, "SELECT 1 FROM notes WHERE id = ? AND admin_id = ?", id, ownerID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check note: %w", err)
		}
		return nil
	}

	args = append(args, id, ownerID)
	res, err := s.db.Exec(
		"UPDATE notes SET "+strings.Join(setClauses, ", ")+" WHERE id = ? AND admin_id = ?",
		args...)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the note with id owned by ownerID. A repeat delete on the
// same id reports ErrNotFound.
func (s *NoteStore) Delete(ownerID, id int) error {
	res, err := s.db.Exec("DELETE FROM notes WHERE id = ? AND admin_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
