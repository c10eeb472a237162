package authctx

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that narrows reports to one owner. The
// service layer still re-filters whatever comes back; this only keeps the
// transfer small.
func OwnedBy(username string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("submitted_by = ?", username)
	}
}
