package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/atlastrips/atlas-cms-backend/internal/repository/postgres"
)

var (
	ErrCountryNotFound     = errors.New("country not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrDealNotFound        = errors.New("deal not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrHeroSlideNotFound   = errors.New("hero slide not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrPopupNotFound       = errors.New("deals popup not found")

	ErrValidation           = errors.New("validation failed")
	ErrSlugConflict         = errors.New("slug already in use")
	ErrCountryInUse         = errors.New("country still has destinations")
	ErrSearchQueryTooShort  = errors.New("search query must be at least 2 characters")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrChatUpstream         = errors.New("chat provider unavailable")
	ErrImageTooLarge        = errors.New("image exceeds size limit")
	ErrImageUnsupportedType = errors.New("unsupported image type")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, postgres.ErrDuplicateKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
