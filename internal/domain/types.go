package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// StringList is an ordered list of free-text entries (tags, highlights,
// inclusions, ...). It maps to a Postgres text[] column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(value any) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

// Clean drops empty and whitespace-only entries while preserving order. The
// admin forms allow transiently empty rows; they are filtered here, at the
// serialization boundary, never at the store layer.
func (l StringList) Clean() StringList {
	out := make(StringList, 0, len(l))
	for _, s := range l {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ItineraryDay is one day of a package itinerary.
type ItineraryDay struct {
	Day           int     `json:"day"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Meals         *string `json:"meals,omitempty"`
	Accommodation *string `json:"accommodation,omitempty"`
	Activity      *string `json:"activity,omitempty"`
}

// Itinerary is the ordered day list of a package, stored as JSONB.
type Itinerary []ItineraryDay

func (i Itinerary) Value() (driver.Value, error) {
	data, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (i *Itinerary) Scan(value any) error {
	if value == nil {
		*i = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte for itinerary, got %T", value)
	}
	return json.Unmarshal(bytes, i)
}
