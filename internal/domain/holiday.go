package domain

import "fmt"

type HolidayKind string

const (
	HolidayNone    HolidayKind = ""
	HolidayRegular HolidayKind = "REGULAR"
	HolidaySpecial HolidayKind = "SPECIAL"
)

func (k HolidayKind) Valid() bool {
	return k == HolidayRegular || k == HolidaySpecial
}

func ParseHolidayKind(s string) (HolidayKind, error) {
	k := HolidayKind(s)
	if !k.Valid() {
		return HolidayNone, fmt.Errorf("%w: 节假日类型 %q 只能是 REGULAR 或 SPECIAL", ErrInvalidFormat, s)
	}
	return k, nil
}

// HolidayInfo 是法定节假日表中按日期索引的值
type HolidayInfo struct {
	Name string      `json:"name" validate:"required"`
	Kind HolidayKind `json:"kind" validate:"oneof=REGULAR SPECIAL"`
}

type Holiday struct {
	Date string      `json:"date" validate:"required,datetime=2006-01-02"`
	Name string      `json:"name" validate:"required"`
	Kind HolidayKind `json:"kind" validate:"oneof=REGULAR SPECIAL"`
}

type HolidaySource string

const (
	HolidaySourceStatutory HolidaySource = "statutory"
	HolidaySourceCustom    HolidaySource = "custom"
)
