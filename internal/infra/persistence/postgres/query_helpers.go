package postgres

import (
	"strings"

	"zenvira/internal/domain/entity"

	"gorm.io/gorm"
)

// likeEscaper escapes the LIKE wildcards of user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive substring pattern for "LOWER(col) LIKE ? ESCAPE '\'".
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

// paginate applies LIMIT/OFFSET for a normalized page.
func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit = entity.NormalizePage(page, limit)

		return db.Offset(entity.Offset(page, limit)).Limit(limit)
	}
}
