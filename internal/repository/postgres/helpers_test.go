package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"bali", "bali"},
		{"100%", `100\%`},
		{"snake_river", `snake\_river`},
		{`c:\trips`, `c:\\trips`},
		{"%_%", `\%\_\%`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := escapeLike(tc.in); got != tc.want {
			t.Fatalf("escapeLike(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTranslateErrorMapsUniqueViolation(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: uniqueViolationCode})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("err = %v, want ErrDuplicateKey", err)
	}

	passthrough := errors.New("connection reset")
	if got := translateError(passthrough); got != passthrough {
		t.Fatalf("unexpected translation: %v", got)
	}
	if translateError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}
