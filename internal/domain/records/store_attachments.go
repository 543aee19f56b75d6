package records

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

const attachmentColumns = `id, employee_id, filename, filepath, content_type, uploaded_at, is_photo`

// uploadedAtLayout matches the storage format of attachment timestamps.
const uploadedAtLayout = "2006-01-02 15:04:05"

func (s *Store) ListAttachments(ctx context.Context, employeeID int64) ([]Attachment, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT `+attachmentColumns+`
    FROM attachments
    WHERE employee_id = ?
    ORDER BY rowid
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attachment
	for rows.Next() {
		att, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// Photo returns the employee's designated photo, or nil when none is flagged.
func (s *Store) Photo(ctx context.Context, employeeID int64) (*Attachment, error) {
	row := s.DB.QueryRowContext(ctx, `
    SELECT `+attachmentColumns+`
    FROM attachments
    WHERE employee_id = ? AND is_photo = 1
    ORDER BY rowid DESC
    LIMIT 1
  `, employeeID)

	att, err := scanAttachment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// InsertAttachment adds a single row for an existing employee. Flagging the
// row as photo clears the flag on every other row first, keeping at most one
// photo per employee.
func (s *Store) InsertAttachment(ctx context.Context, att Attachment) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if att.IsPhoto {
		if _, err := tx.ExecContext(ctx, "UPDATE attachments SET is_photo = 0 WHERE employee_id = ?", att.EmployeeID); err != nil {
			return err
		}
	}
	if err := insertAttachment(ctx, tx, att.EmployeeID, att); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) CountAttachments(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM attachments").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// insertAttachments persists a full attachment set inside the caller's
// transaction. When several entries carry the photo flag the last one wins;
// the rest are stored as plain attachments.
func insertAttachments(ctx context.Context, tx *sql.Tx, employeeID int64, attachments []Attachment) error {
	photoIdx := -1
	for i, att := range attachments {
		if att.IsPhoto {
			photoIdx = i
		}
	}

	for i, att := range attachments {
		att.IsPhoto = i == photoIdx
		if err := insertAttachment(ctx, tx, employeeID, att); err != nil {
			return err
		}
	}
	return nil
}

func insertAttachment(ctx context.Context, tx *sql.Tx, employeeID int64, att Attachment) error {
	if att.ID == uuid.Nil {
		att.ID = uuid.New()
	}
	var uploadedAt string
	if !att.UploadedAt.IsZero() {
		uploadedAt = att.UploadedAt.Format(uploadedAtLayout)
	}
	_, err := tx.ExecContext(ctx, `
    INSERT INTO attachments (`+attachmentColumns+`)
    VALUES (?,?,?,?,?,?,?)
  `, att.ID.String(), employeeID, att.Filename, att.Path, att.ContentType, uploadedAt, att.IsPhoto)
	return err
}

func scanAttachment(row rowScanner) (Attachment, error) {
	var att Attachment
	var rawID, uploadedAt string
	if err := row.Scan(&rawID, &att.EmployeeID, &att.Filename, &att.Path, &att.ContentType, &uploadedAt, &att.IsPhoto); err != nil {
		return Attachment{}, err
	}

	parsedID, err := uuid.Parse(rawID)
	if err != nil {
		return Attachment{}, err
	}
	att.ID = parsedID

	if uploadedAt != "" {
		parsed, err := time.ParseInLocation(uploadedAtLayout, uploadedAt, time.Local)
		if err != nil {
			return Attachment{}, err
		}
		att.UploadedAt = parsed
	}
	return att, nil
}
