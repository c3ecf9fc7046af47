package identity

import (
	"context"

	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

// Kind names one of the persisted entity sets.
type Kind string

const (
	KindUser         Kind = "user"
	KindDoctor       Kind = "doctor"
	KindPatient      Kind = "patient"
	KindHospitalStay Kind = "hospital stay"
	KindVisitation   Kind = "visitation"
)

// Kinds lists every entity set, in warm-up order.
var Kinds = []Kind{KindUser, KindDoctor, KindPatient, KindHospitalStay, KindVisitation}

// Cache is the ID-set projection consulted before every foreign-key-bearing
// write. It is append-only: deleted visitations are never evicted, their IDs
// are simply not looked up again. Implementations are not safe for concurrent
// use; the system runs one logical caller at a time.
type Cache interface {
	// Contains reports whether the ID is known for the given kind.
	Contains(ctx context.Context, kind Kind, id uint) (bool, error)
	// Record appends a newly inserted ID after a successful write.
	Record(ctx context.Context, kind Kind, id uint) error
}

// LoadIDs reads the current IDs of one kind straight from the store, ordered
// ascending.
func LoadIDs(db *gorm.DB, kind Kind) ([]uint, error) {
	var ids []uint
	var err error

	switch kind {
	case KindUser:
		err = db.Model(&entity.User{}).Order("id").Pluck("id", &ids).Error
	case KindDoctor:
		err = db.Model(&entity.Doctor{}).Order("user_id").Pluck("user_id", &ids).Error
	case KindPatient:
		err = db.Model(&entity.Patient{}).Order("user_id").Pluck("user_id", &ids).Error
	case KindHospitalStay:
		err = db.Model(&entity.HospitalStay{}).Order("id").Pluck("id", &ids).Error
	case KindVisitation:
		err = db.Model(&entity.Visitation{}).Order("id").Pluck("id", &ids).Error
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Warm fills the cache with every ID currently in the store. Called once at
// startup, after the schema exists.
func Warm(ctx context.Context, db *gorm.DB, cache Cache) error {
	for _, kind := range Kinds {
		ids, err := LoadIDs(db, kind)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := cache.Record(ctx, kind, id); err != nil {
				return err
			}
		}
	}
	return nil
}
