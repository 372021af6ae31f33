package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/internal/storage"
)

// CreateSession persists a new session to the database.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	now := s.now()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = now.Unix()
	}
	if session.Title == "" {
		session.Title = generateTitle(session.Participants, now)
	}
	session.UpdatedAt = session.CreatedAt
	session.Version = 1

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sessions (id, title, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		session.ID, session.Title, session.Version, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := insertChildren(ctx, tx, session); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSession retrieves a session with its participants, receipts, lines and payers.
// Every table is read inside one transaction, so the result is a single version.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	session := &models.Session{Payers: map[int]string{}}
	err = tx.QueryRowContext(ctx,
		"SELECT id, title, version, created_at, updated_at FROM sessions WHERE id = ?",
		sessionID,
	).Scan(&session.ID, &session.Title, &session.Version, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := loadParticipants(ctx, tx, session); err != nil {
		return nil, err
	}
	if err := loadReceipts(ctx, tx, session); err != nil {
		return nil, err
	}
	if err := loadLines(ctx, tx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession replaces the stored session using compare-and-swap on Version.
func (s *SQLiteStore) UpdateSession(ctx context.Context, session *models.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updatedAt := s.now().Unix()
	res, err := tx.ExecContext(ctx,
		"UPDATE sessions SET title = ?, version = version + 1, updated_at = ? WHERE id = ? AND version = ?",
		session.Title, updatedAt, session.ID, session.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", session.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, session.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		return fmt.Errorf("%w: %s at version %d", storage.ErrVersionConflict, session.ID, session.Version)
	}

	// Children are replaced wholesale; cascades remove items, taxes and contributions.
	for _, table := range []string{"participants", "receipts", "line_items"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE session_id = ?", session.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := insertChildren(ctx, tx, session); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	session.Version++
	session.UpdatedAt = updatedAt
	return nil
}

// DeleteSession removes a session. Deleting a missing session returns ErrNotFound.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, sessionID)
	}
	return nil
}

// DeleteSessionsBefore removes sessions last updated before cutoff.
func (s *SQLiteStore) DeleteSessionsBefore(ctx context.Context, cutoff int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}
	return n, nil
}

func insertChildren(ctx context.Context, tx *sql.Tx, session *models.Session) error {
	for i, name := range session.Participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (session_id, position, name) VALUES (?, ?, ?)",
			session.ID, i, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for ri, r := range session.Receipts {
		var payer sql.NullString
		if p, ok := session.Payers[ri]; ok && p != "" {
			payer = sql.NullString{String: p, Valid: true}
		}
		kind := r.Discount.Kind
		if kind == "" {
			kind = models.DiscountNone
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO receipts (session_id, position, file_name, discount_kind, discount_value, payer) VALUES (?, ?, ?, ?, ?, ?)",
			session.ID, ri, r.FileName, string(kind), r.Discount.Value.Ptr(), payer,
		)
		if err != nil {
			return fmt.Errorf("failed to insert receipt: %w", err)
		}

		for ii, item := range r.Items {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO receipt_items (session_id, receipt_position, position, name, price) VALUES (?, ?, ?, ?, ?)",
				session.ID, ri, ii, item.Name, item.Price.Ptr(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert receipt item: %w", err)
			}
		}
		for ti, tax := range r.Taxes {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO receipt_taxes (session_id, receipt_position, position, name, amount) VALUES (?, ?, ?, ?, ?)",
				session.ID, ri, ti, tax.Name, tax.Amount.Ptr(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert receipt tax: %w", err)
			}
		}
	}

	for li, line := range session.Lines {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO line_items (session_id, position, label, amount, kind, receipt_position, mode) VALUES (?, ?, ?, ?, ?, ?, ?)",
			session.ID, li, line.Label, line.Amount, string(line.Kind), line.ReceiptIndex, string(line.Mode),
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
		for participant, amount := range line.Contributors {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO contributions (session_id, line_position, participant, amount) VALUES (?, ?, ?, ?)",
				session.ID, li, participant, amount.Ptr(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert contribution: %w", err)
			}
		}
	}
	return nil
}

func loadParticipants(ctx context.Context, tx *sql.Tx, session *models.Session) error {
	rows, err := tx.QueryContext(ctx,
		"SELECT name FROM participants WHERE session_id = ? ORDER BY position",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		session.Participants = append(session.Participants, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}
	return nil
}

func loadReceipts(ctx context.Context, tx *sql.Tx, session *models.Session) error {
	rows, err := tx.QueryContext(ctx,
		"SELECT position, file_name, discount_kind, discount_value, payer FROM receipts WHERE session_id = ? ORDER BY position",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get receipts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			position int
			r        models.Receipt
			kind     string
			value    sql.NullFloat64
			payer    sql.NullString
		)
		if err := rows.Scan(&position, &r.FileName, &kind, &value, &payer); err != nil {
			return fmt.Errorf("failed to scan receipt: %w", err)
		}
		r.Discount = models.Discount{Kind: models.DiscountKind(kind), Value: nullAmount(value)}
		if payer.Valid {
			session.Payers[position] = payer.String
		}
		session.Receipts = append(session.Receipts, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate receipts: %w", err)
	}

	for ri := range session.Receipts {
		r := &session.Receipts[ri]
		r.Items = []models.Item{}
		r.Taxes = []models.Tax{}
	}

	itemRows, err := tx.QueryContext(ctx,
		"SELECT receipt_position, name, price FROM receipt_items WHERE session_id = ? ORDER BY receipt_position, position",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get receipt items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			ri    int
			item  models.Item
			price sql.NullFloat64
		)
		if err := itemRows.Scan(&ri, &item.Name, &price); err != nil {
			return fmt.Errorf("failed to scan receipt item: %w", err)
		}
		item.Price = nullAmount(price)
		if ri < 0 || ri >= len(session.Receipts) {
			return fmt.Errorf("item references missing receipt %d", ri)
		}
		session.Receipts[ri].Items = append(session.Receipts[ri].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate receipt items: %w", err)
	}

	taxRows, err := tx.QueryContext(ctx,
		"SELECT receipt_position, name, amount FROM receipt_taxes WHERE session_id = ? ORDER BY receipt_position, position",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get receipt taxes: %w", err)
	}
	defer taxRows.Close()

	for taxRows.Next() {
		var (
			ri     int
			tax    models.Tax
			amount sql.NullFloat64
		)
		if err := taxRows.Scan(&ri, &tax.Name, &amount); err != nil {
			return fmt.Errorf("failed to scan receipt tax: %w", err)
		}
		tax.Amount = nullAmount(amount)
		if ri < 0 || ri >= len(session.Receipts) {
			return fmt.Errorf("tax references missing receipt %d", ri)
		}
		session.Receipts[ri].Taxes = append(session.Receipts[ri].Taxes, tax)
	}
	if err := taxRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate receipt taxes: %w", err)
	}
	return nil
}

func loadLines(ctx context.Context, tx *sql.Tx, session *models.Session) error {
	rows, err := tx.QueryContext(ctx,
		"SELECT label, amount, kind, receipt_position, mode FROM line_items WHERE session_id = ? ORDER BY position",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line       models.LineItem
			kind, mode string
		)
		if err := rows.Scan(&line.Label, &line.Amount, &kind, &line.ReceiptIndex, &mode); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}
		line.Kind = models.LineKind(kind)
		line.Mode = models.SplitMode(mode)
		line.Contributors = map[string]models.Amount{}
		session.Lines = append(session.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate line items: %w", err)
	}

	contribRows, err := tx.QueryContext(ctx,
		"SELECT line_position, participant, amount FROM contributions WHERE session_id = ?",
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get contributions: %w", err)
	}
	defer contribRows.Close()

	for contribRows.Next() {
		var (
			li          int
			participant string
			amount      sql.NullFloat64
		)
		if err := contribRows.Scan(&li, &participant, &amount); err != nil {
			return fmt.Errorf("failed to scan contribution: %w", err)
		}
		if li < 0 || li >= len(session.Lines) {
			return fmt.Errorf("contribution references missing line %d", li)
		}
		session.Lines[li].Contributors[participant] = nullAmount(amount)
	}
	if err := contribRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate contributions: %w", err)
	}
	return nil
}

func nullAmount(v sql.NullFloat64) models.Amount {
	if !v.Valid {
		return models.Unset()
	}
	return models.Number(v.Float64)
}
