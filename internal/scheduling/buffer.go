package scheduling

import (
	"math"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// BufferWindow describes the full unavailability window around a mission:
// preparation before departure and closure (turnaround, maintenance checks)
// after return.
type BufferWindow struct {
	PreparationStart time.Time
	ClosureEnd       time.Time
}

// ComputeBuffers возвращает буферное окно вокруг интервала миссии:
// подготовка перед вылетом и закрытие после возврата
func ComputeBuffers(interval domain.Interval, preparation, closure time.Duration) BufferWindow {
	return BufferWindow{
		PreparationStart: interval.Start.Add(-preparation),
		ClosureEnd:       interval.End.Add(closure),
	}
}

// Contains reports whether t falls inside the buffer window, boundaries
// half-open on both touching edges to allow back-to-back scheduling.
func (w BufferWindow) Contains(t time.Time) bool {
	return t.After(w.PreparationStart) && t.Before(w.ClosureEnd)
}

// OvernightInfo is the result of overnight detection for an itinerary.
type OvernightInfo struct {
	IsOvernight bool
	NightCount  int
}

// DetectOvernight определяет, пересекает ли полёт хотя бы одну полночь.
// Количество ночей = количество затронутых календарных дат минус один,
// но не меньше одной для ночёвки. Функция чистая: результат одинаков для
// любой таймзоны, пока оба момента выражены в одной и той же зоне.
func DetectOvernight(departure, ret time.Time) OvernightInfo {
	if !ret.After(departure) {
		return OvernightInfo{}
	}

	depDay := startOfDay(departure)
	retDay := startOfDay(ret)
	if !retDay.After(depDay) {
		return OvernightInfo{}
	}

	// Количество затронутых календарных дат, включая неполные дни
	// на обоих концах. Округление защищает от 23/25-часовых суток
	// при переходе на летнее время
	daySpan := int(math.Round(retDay.Sub(depDay).Hours()/24)) + 1

	nights := daySpan - 1
	if nights < 1 {
		nights = 1
	}
	return OvernightInfo{IsOvernight: true, NightCount: nights}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
