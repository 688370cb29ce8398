package repository

import (
	"context"
)

// Base supplies the filtered reads and staged mutations every entity
// repository is built from.
type Base[T any] struct {
	session *session
}

func newBase[T any](s *session) Base[T] {
	return Base[T]{session: s}
}

// FindByCondition returns read-only copies; changing them has no effect on Save.
func (b Base[T]) FindByCondition(ctx context.Context, scopes ...Scope) ([]T, error) {
	var entities []T
	if err := b.session.query(ctx).Scopes(scopes...).Find(&entities).Error; err != nil {
		return nil, mapPersistenceError(err, "Failed to load data")
	}
	return entities, nil
}

// FindByConditionForUpdate returns tracked handles; in-place changes are
// written by the next Save.
func (b Base[T]) FindByConditionForUpdate(ctx context.Context, scopes ...Scope) ([]*T, error) {
	var entities []*T
	if err := b.session.query(ctx).Scopes(scopes...).Find(&entities).Error; err != nil {
		return nil, mapPersistenceError(err, "Failed to load data")
	}
	for _, e := range entities {
		b.session.track(e)
	}
	return entities, nil
}

func (b Base[T]) Create(entity *T) {
	b.session.stageInsert(entity)
}

func (b Base[T]) Delete(entity *T) {
	b.session.stageDelete(entity)
}

func firstOrNil[T any](entities []T) *T {
	if len(entities) == 0 {
		return nil
	}
	return &entities[0]
}

func firstPtrOrNil[T any](entities []*T) *T {
	if len(entities) == 0 {
		return nil
	}
	return entities[0]
}
