package repository

import (
	"context"
	"reflect"

	"gorm.io/gorm"
)

// session collects the changes of one unit of work. Nothing reaches the
// database until commit, which applies inserts, dirty tracked entities and
// deletes inside a single transaction.
type session struct {
	db      *gorm.DB
	inserts []any
	deletes []any
	tracked []trackedEntity
}

type trackedEntity struct {
	entity   any // pointer handed out to the caller
	original any // value copy taken when the entity was loaded or last saved
}

func newSession(db *gorm.DB) *session {
	return &session{db: db}
}

func (s *session) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *session) stageInsert(entity any) {
	s.inserts = append(s.inserts, entity)
}

func (s *session) stageDelete(entity any) {
	s.deletes = append(s.deletes, entity)
}

func (s *session) track(entity any) {
	s.tracked = append(s.tracked, trackedEntity{
		entity:   entity,
		original: snapshot(entity),
	})
}

// dirty returns tracked entities mutated since they were loaded. Entities
// staged for deletion are skipped.
func (s *session) dirty() []any {
	var changed []any
	for _, t := range s.tracked {
		if s.isDeleted(t.entity) {
			continue
		}
		if !reflect.DeepEqual(t.original, snapshot(t.entity)) {
			changed = append(changed, t.entity)
		}
	}
	return changed
}

func (s *session) isDeleted(entity any) bool {
	for _, d := range s.deletes {
		if d == entity {
			return true
		}
	}
	return false
}

func (s *session) hasChanges() bool {
	return len(s.inserts) > 0 || len(s.deletes) > 0 || len(s.dirty()) > 0
}

func (s *session) commit(ctx context.Context) error {
	if !s.hasChanges() {
		return nil
	}

	dirty := s.dirty()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entity := range s.inserts {
			if err := tx.Create(entity).Error; err != nil {
				return err
			}
		}
		for _, entity := range dirty {
			if err := tx.Save(entity).Error; err != nil {
				return err
			}
		}
		for _, entity := range s.deletes {
			if err := tx.Delete(entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// staged work is kept so the caller may inspect or retry
		return err
	}

	s.inserts = nil
	s.deletes = nil
	for i := range s.tracked {
		s.tracked[i].original = snapshot(s.tracked[i].entity)
	}
	return nil
}

func snapshot(entity any) any {
	return reflect.Indirect(reflect.ValueOf(entity)).Interface()
}
