package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// OverlapKind distinguishes a direct overlap with a mission or block from
// an overlap that only touches a mission's preparation/closure buffer.
type OverlapKind string

const (
	OverlapDirect OverlapKind = "direct"
	OverlapBuffer OverlapKind = "buffer"
)

// Conflict describes one existing resource standing in the way of a
// proposed interval. Exactly one of MissionID/BlockID is set.
type Conflict struct {
	MissionID     *int64
	BlockID       *int64
	OverlapKind   OverlapKind
	NextAvailable time.Time
}

// FindConflicts проверяет предлагаемый интервал против существующих миссий
// и блокировок одного воздушного судна. Занятость — нормальный исход, а не
// ошибка: пустой список означает "можно бронировать". Единственная ошибка —
// некорректный интервал (start >= end), это всегда баг вызывающей стороны.
//
// Предлагаемый интервал НЕ расширяется: буферами расширяется каждая
// существующая миссия. Касание границ конфликтом не считается — буферы
// полуоткрыты, чтобы разрешить стыковку вплотную к краю буфера.
// Блокировки администратора проверяются без буферов: они точные.
func FindConflicts(
	proposed domain.Interval,
	aircraftID int64,
	missions []*domain.Mission,
	blocks []*domain.Block,
	preparation, closure time.Duration,
) ([]Conflict, error) {
	if !proposed.IsValid() {
		return nil, ErrInvalidInterval
	}

	conflicts := make([]Conflict, 0)

	for _, m := range missions {
		if m.AircraftID != aircraftID || !m.IsActive() {
			continue
		}

		window := ComputeBuffers(m.Interval, preparation, closure)
		if !window.PreparationStart.Before(proposed.End) || !window.ClosureEnd.After(proposed.Start) {
			continue
		}

		kind := OverlapBuffer
		if proposed.Overlaps(m.Interval) {
			kind = OverlapDirect
		}

		id := m.ID
		conflicts = append(conflicts, Conflict{
			MissionID:     &id,
			OverlapKind:   kind,
			NextAvailable: m.BlockedUntil,
		})
	}

	for _, b := range blocks {
		if b.AircraftID != aircraftID {
			continue
		}
		if !proposed.Overlaps(b.Interval) {
			continue
		}

		id := b.ID
		conflicts = append(conflicts, Conflict{
			BlockID:       &id,
			OverlapKind:   OverlapDirect,
			NextAvailable: b.Interval.End,
		})
	}

	// Сначала связывающее ограничение — самый ранний свободный момент
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].NextAvailable.Before(conflicts[j].NextAvailable)
	})

	return conflicts, nil
}
