package repos

import (
	"strings"

	"gorm.io/gorm"

	"github.com/atelierhq/atelier/internal/db/models"
)

// likePattern builds the lowercase substring pattern used by the search
// queries.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// scopeList applies pagination options to a query.
func scopeList(db *gorm.DB, opts *models.ListOptions) *gorm.DB {
	if opts == nil {
		return db
	}
	if opts.Limit > 0 {
		db = db.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		db = db.Offset(opts.Offset)
	}
	return db
}
