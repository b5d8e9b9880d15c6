package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout — ISO-формат календарной даты без времени суток и зоны.
const dateLayout = "2006-01-02"

// Date — календарная дата заказа. Намеренно не time.Time: у даты заказа
// нет времени суток и часового пояса, и они не должны появляться после
// round-trip через хранилище.
type Date struct {
	t time.Time
}

// ParseDate разбирает строку вида "2024-01-15".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrDateInvalid, s)
	}
	return Date{t: t}, nil
}

// DateOf усекает момент времени до календарной даты в UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String возвращает дату в формате "2006-01-02".
func (d Date) String() string { return d.t.Format(dateLayout) }

// Time возвращает полночь UTC соответствующей даты.
func (d Date) Time() time.Time { return d.t }

// IsZero сообщает, не заполнена ли дата.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal сравнивает календарные даты.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
