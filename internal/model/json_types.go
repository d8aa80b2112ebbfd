package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// IntList stores an ordered list of integers as a JSON column.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	return json.Marshal(l)
}

func (l *IntList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}
