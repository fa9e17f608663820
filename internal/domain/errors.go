package domain

import "errors"

// 业务错误，调用方通过 errors.Is 判断类别
var (
	ErrInvalidFormat         = errors.New("格式错误")
	ErrMissingField          = errors.New("缺少必填字段")
	ErrNonPositiveDuration   = errors.New("净工时必须大于零")
	ErrCorruptPersistedState = errors.New("已保存的数据无法解析")
	ErrInvalidSelection      = errors.New("无效的选择")
	ErrEntryNotFound         = errors.New("记录不存在")
	ErrHolidayNotFound       = errors.New("节假日不存在")
	ErrStatutoryHoliday      = errors.New("法定节假日不能删除")
)
