package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"partnerline/internal/db"
)

// Collection is a typed repository over one named collection. Every
// operation is a single one-shot store transaction; a Collection never
// opens a transaction spanning more than one collection.
type Collection[T any] struct {
	store *db.Store
	name  db.Collection
	id    func(T) string
}

// NewCollection binds a repository to a collection. id extracts the
// record key from an entity.
func NewCollection[T any](store *db.Store, name db.Collection, id func(T) string) Collection[T] {
	return Collection[T]{store: store, name: name, id: id}
}

// Name returns the bound collection name.
func (c Collection[T]) Name() db.Collection { return c.name }

// Add inserts v, failing with db.ErrDuplicateKey if its id exists.
func (c Collection[T]) Add(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", c.name, err)
	}
	return c.store.RunTransaction(ctx, c.name, db.ReadWrite, func(tx *db.Tx) error {
		return tx.Add(c.id(v), raw)
	})
}

// Get fetches a record by id. Absence is a soft condition: ok is false
// and err is nil when the id is not present.
func (c Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var v T
	found := false
	err := c.store.RunTransaction(ctx, c.name, db.ReadOnly, func(tx *db.Tx) error {
		raw, err := tx.Get(id)
		if err == db.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return json.Unmarshal(raw, &v)
	})
	return v, found, err
}

// GetAll returns every record in insertion order.
func (c Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	var res []T
	err := c.store.RunTransaction(ctx, c.name, db.ReadOnly, func(tx *db.Tx) error {
		raws, err := tx.GetAll()
		if err != nil {
			return err
		}
		res = make([]T, 0, len(raws))
		for _, raw := range raws {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("unmarshal %s record: %w", c.name, err)
			}
			res = append(res, v)
		}
		return nil
	})
	return res, err
}

// Update applies mutate to the stored record in one read-modify-write
// transaction. Returns db.ErrNotFound if the id is absent.
func (c Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) error {
	return c.store.RunTransaction(ctx, c.name, db.ReadWrite, func(tx *db.Tx) error {
		raw, err := tx.Get(id)
		if err != nil {
			return err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("unmarshal %s record: %w", c.name, err)
		}
		mutate(&v)
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s record: %w", c.name, err)
		}
		return tx.Put(id, out)
	})
}

// Delete removes a record. Returns db.ErrNotFound if the id is absent.
func (c Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.RunTransaction(ctx, c.name, db.ReadWrite, func(tx *db.Tx) error {
		return tx.Delete(id)
	})
}

// Count returns the number of records in the collection.
func (c Collection[T]) Count(ctx context.Context) (int, error) {
	var n int
	err := c.store.RunTransaction(ctx, c.name, db.ReadOnly, func(tx *db.Tx) error {
		var err error
		n, err = tx.Count()
		return err
	})
	return n, err
}
