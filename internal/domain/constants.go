package domain

// Default configuration values
const (
	DefaultPreparationBufferHours = 3
	DefaultClosureBufferHours     = 3
	DefaultHoldHours              = 12
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 15
	MaxSlotGranularityMinutes = 480 // 8 hours
	MaxQueryRangeDays         = 31  // calendar UIs query at most a month
	MaxMissionDurationHours   = 14 * 24
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveMissionStatuses список статусов, не занимающих окно судна
// Используется при фильтрации для расчёта доступности
var InactiveMissionStatuses = []MissionStatus{
	StatusCancelled,
}

// ActiveMissionStatuses список статусов, занимающих окно судна
var ActiveMissionStatuses = []MissionStatus{
	StatusConfirmed,
}
