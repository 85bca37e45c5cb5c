package models

import (
	"errors"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid mission status")
)

// Request модели

// CancelMissionRequest запрос на отмену миссии
type CancelMissionRequest struct {
	MemberID           int64  `json:"memberId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetMemberMissionsRequest запрос на получение миссий участника
type GetMemberMissionsRequest struct {
	MemberID int64   `json:"memberId"`
	Status   *string `json:"status,omitempty"`
}

// GetAircraftMissionsRequest запрос на получение миссий воздушного судна
type GetAircraftMissionsRequest struct {
	AircraftID      int64      `json:"aircraftId"`
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые миссии
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAircraftMissionsRequest) ToDomainFilter() (domain.AircraftMissionsFilter, error) {
	filter := domain.AircraftMissionsFilter{
		AircraftID:      r.AircraftID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainMissionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// MissionResponse ответ с данными миссии
type MissionResponse struct {
	ID                 int64      `json:"id"`
	AircraftID         int64      `json:"aircraftId"`
	MemberID           int64      `json:"memberId"`
	DepartureTime      time.Time  `json:"departureTime"`
	ReturnTime         time.Time  `json:"returnTime"`
	Origin             string     `json:"origin"`
	Destination        string     `json:"destination"`
	Status             string     `json:"status"`
	BlockedUntil       time.Time  `json:"blockedUntil"`
	Cost               float64    `json:"cost"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// MissionListResponse список миссий
type MissionListResponse struct {
	Missions []*MissionResponse `json:"missions"`
	Total    int                `json:"total"`
}

// FromDomainMission конвертирует domain модель в response
func FromDomainMission(m *domain.Mission) *MissionResponse {
	return &MissionResponse{
		ID:                 m.ID,
		AircraftID:         m.AircraftID,
		MemberID:           m.MemberID,
		DepartureTime:      m.Interval.Start,
		ReturnTime:         m.Interval.End,
		Origin:             m.Origin,
		Destination:        m.Destination,
		Status:             string(m.Status),
		BlockedUntil:       m.BlockedUntil,
		Cost:               m.Cost,
		CancellationReason: m.CancellationReason,
		CancelledAt:        m.CancelledAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomainMissionList конвертирует список domain моделей в response
func FromDomainMissionList(missions []*domain.Mission) *MissionListResponse {
	out := make([]*MissionResponse, 0, len(missions))
	for _, m := range missions {
		out = append(out, FromDomainMission(m))
	}
	return &MissionListResponse{Missions: out, Total: len(out)}
}

// ToDomainMissionStatus конвертирует строку в domain статус
func ToDomainMissionStatus(s string) (domain.MissionStatus, error) {
	switch domain.MissionStatus(s) {
	case domain.StatusConfirmed, domain.StatusCancelled:
		return domain.MissionStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
