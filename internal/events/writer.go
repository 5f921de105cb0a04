package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"partnerline/internal/db"
)

// Writer appends audit entries (generation runs, quantity adjustments,
// clears) to the store's event log. It uses the store's raw-handle
// capability; entity data never goes through here.
type Writer struct {
	Store *db.Store
	Now   func() time.Time
}

type Payload map[string]any

type Event struct {
	ID         int64  `json:"id"`
	TS         string `json:"ts" format:"date-time"`
	Type       string `json:"type"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	Payload    string `json:"payload_json"`
}

func (w Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Append records one event. Fails with db.ErrNotInitialized before Init.
func (w Writer) Append(ctx context.Context, evtType, entityKind, entityID string, payload Payload) error {
	if payload == nil {
		payload = Payload{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	ts := w.now().UTC().Format(time.RFC3339)
	return w.Store.WithRawHandle(func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, `INSERT INTO events(ts,type,entity_kind,entity_id,payload_json) VALUES (?,?,?,?,?)`,
			ts, evtType, entityKind, nullable(entityID), string(data))
		return err
	})
}

// Latest returns the most recent events, newest first.
func (w Writer) Latest(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	var res []Event
	err := w.Store.WithRawHandle(func(conn *sql.DB) error {
		rows, err := conn.QueryContext(ctx, `SELECT id,ts,type,entity_kind,entity_id,payload_json FROM events ORDER BY id DESC LIMIT ?`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e Event
			var entityID sql.NullString
			if err := rows.Scan(&e.ID, &e.TS, &e.Type, &e.EntityKind, &entityID, &e.Payload); err != nil {
				return err
			}
			if entityID.Valid {
				e.EntityID = entityID.String
			}
			res = append(res, e)
		}
		return rows.Err()
	})
	return res, err
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
