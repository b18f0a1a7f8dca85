package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// SettingKind tags which variant of a setting value is populated.
type SettingKind string

const (
	SettingString     SettingKind = "string"
	SettingNumber     SettingKind = "number"
	SettingBool       SettingKind = "bool"
	SettingStringList SettingKind = "string_list"
)

// SettingValue is a tagged variant instead of an untyped JSON blob, so a
// wrongly shaped preference fails at the boundary instead of deep in a
// handler. Exactly one of the variant fields is set, matching Kind.
type SettingValue struct {
	Kind SettingKind `json:"kind"`
	Str  *string     `json:"str,omitempty"`
	Num  *float64    `json:"num,omitempty"`
	Bool *bool       `json:"bool,omitempty"`
	List []string    `json:"list,omitempty"`
}

func StringValue(s string) SettingValue {
	return SettingValue{Kind: SettingString, Str: &s}
}

func NumberValue(n float64) SettingValue {
	return SettingValue{Kind: SettingNumber, Num: &n}
}

func BoolValue(b bool) SettingValue {
	return SettingValue{Kind: SettingBool, Bool: &b}
}

func StringListValue(list []string) SettingValue {
	return SettingValue{Kind: SettingStringList, List: list}
}

// Validate checks that the populated variant matches the declared kind.
func (v SettingValue) Validate() error {
	switch v.Kind {
	case SettingString:
		if v.Str == nil {
			return errors.New("string setting has no str value")
		}
	case SettingNumber:
		if v.Num == nil {
			return errors.New("number setting has no num value")
		}
	case SettingBool:
		if v.Bool == nil {
			return errors.New("bool setting has no bool value")
		}
	case SettingStringList:
		if v.List == nil {
			return errors.New("string_list setting has no list value")
		}
	default:
		return fmt.Errorf("unknown setting kind %q", v.Kind)
	}
	return nil
}

// StringList returns the list variant, or nil when the value holds another kind.
func (v SettingValue) StringList() []string {
	if v.Kind != SettingStringList {
		return nil
	}
	return v.List
}

func (v SettingValue) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *SettingValue) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	case nil:
		*v = SettingValue{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into SettingValue", src)
	}
}

// Setting is one persisted UI preference, keyed by a context string.
// Sort orders are stored under "sort_order_<context>" keys as string lists.
type Setting struct {
	Key       string       `gorm:"primaryKey" json:"key"`
	Value     SettingValue `gorm:"type:jsonb" json:"value"`
	UpdatedAt int64        `gorm:"autoUpdateTime" json:"updatedAt"`
}

type UpsertSettingInput struct {
	Value SettingValue `json:"value" validate:"required"`
}

type SaveSortOrderInput struct {
	IDs []string `json:"ids" validate:"required"`
}
