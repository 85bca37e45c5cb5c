package scheduling

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// BufferReason is reported for slots falling inside a mission's
// preparation/closure window.
const BufferReason = "preparation/closure buffer"

// SlotParams carries the scheduling parameters for one availability query.
type SlotParams struct {
	Granularity time.Duration
	Preparation time.Duration
	Closure     time.Duration
	Now         time.Time
}

// conflictSource промежуточное представление конфликтующего ресурса:
// конец его собственного интервала и следующий свободный момент
type conflictSource struct {
	resourceEnd   time.Time
	nextAvailable time.Time
}

// GetSlots разбивает запрошенный диапазон на подынтервалы фиксированного
// шага и классифицирует каждый из них. Чистая проекция над переданными
// коллекциями: никаких обращений к сети или базе внутри — вызывающая
// сторона загружает миссии и блокировки один раз на запрос.
//
// Приоритет классификации подынтервала:
//  1. пересекает блокировку администратора → blocked
//  2. пересекает активную миссию → booked
//  3. попадает в буферное окно миссии (но не в саму миссию) → blocked
//  4. целиком в прошлом → invalid
//  5. иначе → available
//
// Слоты не склеиваются: каждый подынтервал отражается отдельно, чтобы
// вызывающая сторона могла отрисовать календарь по слотам.
func GetSlots(
	aircraftID int64,
	query domain.Interval,
	missions []*domain.Mission,
	blocks []*domain.Block,
	params SlotParams,
) ([]domain.TimeSlot, error) {
	if !query.IsValid() {
		return nil, ErrInvalidInterval
	}
	if params.Granularity <= 0 {
		return nil, ErrInvalidGranularity
	}

	slots := make([]domain.TimeSlot, 0)

	for cur := query.Start; cur.Before(query.End); cur = cur.Add(params.Granularity) {
		end := cur.Add(params.Granularity)
		if end.After(query.End) {
			// Последний подынтервал урезается до границы запроса,
			// чтобы слоты покрывали диапазон без зазоров
			end = query.End
		}
		sub := domain.Interval{Start: cur, End: end}
		slots = append(slots, classifySlot(aircraftID, sub, missions, blocks, params))
	}

	return slots, nil
}

func classifySlot(
	aircraftID int64,
	sub domain.Interval,
	missions []*domain.Mission,
	blocks []*domain.Block,
	params SlotParams,
) domain.TimeSlot {
	slot := domain.TimeSlot{Interval: sub}

	// Собираем все конфликтующие ресурсы, чтобы потом выбрать
	// связывающее ограничение (ресурс с самым ранним концом)
	var sources []conflictSource

	var blockedBy *domain.Block
	for _, b := range blocks {
		if b.AircraftID != aircraftID {
			continue
		}
		if sub.Overlaps(b.Interval) {
			sources = append(sources, conflictSource{
				resourceEnd:   b.Interval.End,
				nextAvailable: b.Interval.End,
			})
			if blockedBy == nil || b.Interval.End.Before(blockedBy.Interval.End) {
				blockedBy = b
			}
		}
	}

	var bookedBy *domain.Mission
	var bufferOf *domain.Mission
	for _, m := range missions {
		if m.AircraftID != aircraftID || !m.IsActive() {
			continue
		}

		if sub.Overlaps(m.Interval) {
			sources = append(sources, conflictSource{
				resourceEnd:   m.Interval.End,
				nextAvailable: m.BlockedUntil,
			})
			if bookedBy == nil || m.Interval.End.Before(bookedBy.Interval.End) {
				bookedBy = m
			}
			continue
		}

		window := ComputeBuffers(m.Interval, params.Preparation, params.Closure)
		buffered := domain.Interval{Start: window.PreparationStart, End: window.ClosureEnd}
		if sub.Overlaps(buffered) {
			sources = append(sources, conflictSource{
				resourceEnd:   m.Interval.End,
				nextAvailable: m.BlockedUntil,
			})
			if bufferOf == nil || m.Interval.End.Before(bufferOf.Interval.End) {
				bufferOf = m
			}
		}
	}

	switch {
	case blockedBy != nil:
		slot.Status = domain.SlotBlocked
		reason := blockedBy.Reason
		slot.Reason = &reason
		slot.NextAvailable = bindingNextAvailable(sources)

	case bookedBy != nil:
		slot.Status = domain.SlotBooked
		id := bookedBy.ID
		slot.RelatedMissionID = &id
		slot.NextAvailable = bindingNextAvailable(sources)

	case bufferOf != nil:
		slot.Status = domain.SlotBlocked
		reason := BufferReason
		slot.Reason = &reason
		slot.NextAvailable = bindingNextAvailable(sources)

	case !sub.End.After(params.Now):
		// Слот целиком в прошлом — бронировать его бессмысленно
		slot.Status = domain.SlotInvalid

	default:
		slot.Status = domain.SlotAvailable
	}

	return slot
}

// bindingNextAvailable выбирает nextAvailable ресурса с самым ранним
// концом собственного интервала: именно он является связывающим
// ограничением для ближайшего свободного момента
func bindingNextAvailable(sources []conflictSource) *time.Time {
	if len(sources) == 0 {
		return nil
	}
	best := sources[0]
	for _, s := range sources[1:] {
		if s.resourceEnd.Before(best.resourceEnd) {
			best = s
		}
	}
	na := best.nextAvailable
	return &na
}
