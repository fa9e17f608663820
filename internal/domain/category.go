package domain

import "time"

// Category 是工时的计薪类别，每条记录只落在一个类别（工作日的正常+加班视为同一条路径）
type Category int

const (
	CategoryRegular Category = iota
	CategoryWeekdayOvertime
	CategorySaturday
	CategorySunday
	CategoryRegularHoliday
	CategorySpecialHoliday
	CategoryRegularHolidayRestDay
	CategorySpecialHolidayRestDay
)

// Categories 按展示顺序列出所有类别
var Categories = []Category{
	CategoryRegular,
	CategoryWeekdayOvertime,
	CategorySaturday,
	CategorySunday,
	CategoryRegularHoliday,
	CategorySpecialHoliday,
	CategoryRegularHolidayRestDay,
	CategorySpecialHolidayRestDay,
}

var categoryNames = map[Category]string{
	CategoryRegular:               "regular",
	CategoryWeekdayOvertime:       "weekdayOvertime",
	CategorySaturday:              "saturday",
	CategorySunday:                "sunday",
	CategoryRegularHoliday:        "regularHoliday",
	CategorySpecialHoliday:        "specialHoliday",
	CategoryRegularHolidayRestDay: "regularHolidayOnRestDay",
	CategorySpecialHolidayRestDay: "specialHolidayOnRestDay",
}

var categoryLabels = map[Category]string{
	CategoryRegular:               "Regular Hours",
	CategoryWeekdayOvertime:       "Weekday OT",
	CategorySaturday:              "Saturday Pay",
	CategorySunday:                "Sunday Pay",
	CategoryRegularHoliday:        "Regular Holiday",
	CategorySpecialHoliday:        "Special Holiday",
	CategoryRegularHolidayRestDay: "Reg Holiday + Rest Day",
	CategorySpecialHolidayRestDay: "Spec Holiday + Rest Day",
}

func (c Category) String() string {
	return categoryNames[c]
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type DayType int

const (
	Weekday DayType = iota
	Saturday
	Sunday
)

func DayTypeOf(d time.Weekday) DayType {
	switch d {
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	default:
		return Weekday
	}
}

func (d DayType) IsRestDay() bool {
	return d == Saturday || d == Sunday
}
