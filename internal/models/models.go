package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
)

type User struct {
	ID          string  `db:"id" json:"id"`
	Email       string  `db:"email" json:"email"`
	Name        string  `db:"name" json:"name"`
	Age         int     `db:"age" json:"age"`
	Password    string  `db:"password" json:"-"` // bcrypt hash
	IsCaregiver bool    `db:"is_caregiver" json:"isCaregiver"`
	CaregiverID *string `db:"caregiver_id" json:"caregiverId"`
}

type Medication struct {
	ID     string  `db:"id" json:"id"`
	UserID string  `db:"user_id" json:"userId"`
	Name   string  `db:"name" json:"name"`
	Amount float64 `db:"amount" json:"amount"`
	Unit   string  `db:"unit" json:"unit"`
	Time   string  `db:"schedule_time" json:"time"` // free text, e.g. "08:00 AM"
	Days   Days    `db:"days" json:"days"`
	Taken  bool    `db:"taken" json:"taken"`
}

type Message struct {
	ID           string    `db:"id" json:"id"`
	MedicationID string    `db:"medication_id" json:"medication_id"`
	SenderID     string    `db:"sender_id" json:"sender_id"`
	Content      string    `db:"content" json:"content"`
	Timestamp    time.Time `db:"created_at" json:"timestamp"`
}

// Days is the set of weekday labels a medication is scheduled on. It is
// persisted as a JSON array in a text column.
type Days []string

// NewDays collapses duplicates, keeping first-seen order, and never returns nil.
func NewDays(labels []string) Days {
	if len(labels) == 0 {
		return Days{}
	}
	return Days(lo.Uniq(labels))
}

func (d Days) Value() (driver.Value, error) {
	if d == nil {
		d = Days{}
	}
	b, err := json.Marshal([]string(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *Days) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Days{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("days: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*d = Days{}
		return nil
	}
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return fmt.Errorf("days: %w", err)
	}
	*d = NewDays(labels)
	return nil
}

func (d Days) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(d))
}
