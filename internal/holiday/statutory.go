package holiday

import "github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/domain"

// 内置的 2025 年全国性节假日，首次使用时复制到持久化存储，之后只读取存储中的副本
var builtinStatutory = map[string]domain.HolidayInfo{
	// 法定节假日
	"2025-01-01": {Name: "New Year's Day", Kind: domain.HolidayRegular},
	"2025-05-01": {Name: "Labor Day", Kind: domain.HolidayRegular},
	"2025-06-12": {Name: "Independence Day", Kind: domain.HolidayRegular},
	"2025-11-30": {Name: "Bonifacio Day", Kind: domain.HolidayRegular},
	"2025-12-25": {Name: "Christmas Day", Kind: domain.HolidayRegular},
	"2025-12-30": {Name: "Rizal Day", Kind: domain.HolidayRegular},

	// 特别非工作日
	"2025-02-25": {Name: "EDSA Revolution Anniversary", Kind: domain.HolidaySpecial},
	"2025-04-09": {Name: "Day of Valor", Kind: domain.HolidaySpecial},
	"2025-11-01": {Name: "All Saints' Day", Kind: domain.HolidaySpecial},
	"2025-12-08": {Name: "Feast of the Immaculate Conception", Kind: domain.HolidaySpecial},
	"2025-12-31": {Name: "New Year's Eve", Kind: domain.HolidaySpecial},

	// 移动节日
	"2025-04-18": {Name: "Maundy Thursday", Kind: domain.HolidayRegular},
	"2025-04-19": {Name: "Good Friday", Kind: domain.HolidayRegular},
	"2025-04-20": {Name: "Easter Sunday", Kind: domain.HolidaySpecial},
}

// BuiltinStatutory 返回内置表的副本，调用方可以随意修改
func BuiltinStatutory() map[string]domain.HolidayInfo {
	m := make(map[string]domain.HolidayInfo, len(builtinStatutory))
	for date, info := range builtinStatutory {
		m[date] = info
	}
	return m
}
