package domain

import "sort"

// TopPriorityPosition is the head of the queue: its holder confirms a
// contended window ahead of everyone else.
const TopPriorityPosition = 1

// PriorityEntry assigns a queue position to an active member.
// Invariant: across all active members the positions form a contiguous
// permutation 1..N, with exactly one member at position 1.
type PriorityEntry struct {
	MemberID int64
	Position int
}

// RotatePriorities выполняет одну ротацию очереди: участник с позицией 1
// уходит в хвост (позиция N), все остальные поднимаются на одну позицию.
// Функция чистая, вход не модифицирует. Ровно одна ротация за вызов —
// дисциплина "раз в сутки" остаётся за внешним планировщиком.
func RotatePriorities(entries []PriorityEntry) []PriorityEntry {
	n := len(entries)
	rotated := make([]PriorityEntry, n)
	for i, e := range entries {
		if e.Position == 1 {
			e.Position = n
		} else {
			e.Position--
		}
		rotated[i] = e
	}
	return rotated
}

// OverridePriority переставляет одного участника на новую позицию:
// участник убирается со старой позиции, образовавшийся разрыв закрывается,
// затем участник вставляется на новую позицию, сдвигая остальных вниз.
// Возвращает false, если участник не найден или позиция вне диапазона 1..N.
func OverridePriority(entries []PriorityEntry, memberID int64, newPosition int) ([]PriorityEntry, bool) {
	n := len(entries)
	if newPosition < 1 || newPosition > n {
		return nil, false
	}

	old := 0
	for _, e := range entries {
		if e.MemberID == memberID {
			old = e.Position
		}
	}
	if old == 0 {
		return nil, false
	}

	result := make([]PriorityEntry, n)
	for i, e := range entries {
		switch {
		case e.MemberID == memberID:
			e.Position = newPosition
		case e.Position > old:
			// Закрываем разрыв после удаления со старой позиции
			e.Position--
			if e.Position >= newPosition {
				e.Position++
			}
		case e.Position >= newPosition:
			// Сдвигаем вниз тех, кто оказался ниже новой позиции
			e.Position++
		}
		result[i] = e
	}
	return result, true
}

// ValidatePermutation checks the queue invariant: positions are a
// contiguous permutation 1..N with no duplicates or gaps. A violation
// indicates queue corruption and is treated as a fatal internal error.
func ValidatePermutation(entries []PriorityEntry) bool {
	n := len(entries)
	positions := make([]int, 0, n)
	for _, e := range entries {
		positions = append(positions, e.Position)
	}
	sort.Ints(positions)
	for i, p := range positions {
		if p != i+1 {
			return false
		}
	}
	return true
}
