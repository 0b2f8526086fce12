package session

import (
	"context"
	"maps"
)

// MemStore keeps values in process memory. A fresh Manager over the same
// MemStore behaves like a restart.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (s *MemStore) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return maps.Clone(s.values), nil
}

func (s *MemStore) Put(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	maps.Copy(s.values, values)
	return nil
}

func (s *MemStore) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}
