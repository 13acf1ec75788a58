package create_block

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	createBlock "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_block"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	Date      string `json:"date"`      // "2026-08-28"
	StartTime string `json:"startTime"` // "13:00"
	EndTime   string `json:"endTime"`   // "14:00"
	Kind      string `json:"kind"`      // "blocking" | "available"
	Reason    string `json:"reason,omitempty"`
	Force     bool   `json:"force,omitempty"`
}

// ConflictingAppointmentResponse запись, пересекающаяся с блоком
type ConflictingAppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Reference     string `json:"reference"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Kind      string `json:"kind"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"createdAt"`

	Conflicts []ConflictingAppointmentResponse `json:"conflicts,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockRequest) ToUseCaseRequest(staffID int64) (*createBlock.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBlock.Request{
		StaffID:   staffID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Kind:      domain.BlockKind(r.Kind),
		Reason:    r.Reason,
		Force:     r.Force,
	}, nil
}

// FromUseCaseConflicts конвертирует конфликты use case в HTTP модель
func FromUseCaseConflicts(conflicts []createBlock.ConflictingAppointment) []ConflictingAppointmentResponse {
	result := make([]ConflictingAppointmentResponse, len(conflicts))
	for i, conflict := range conflicts {
		result[i] = ConflictingAppointmentResponse{
			AppointmentID: conflict.AppointmentID,
			Reference:     conflict.Reference,
			StartTime:     conflict.StartTime.String(),
			EndTime:       conflict.EndTime.String(),
		}
	}
	return result
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlock.Response) *BlockResponse {
	return &BlockResponse{
		ID:        resp.ID,
		StaffID:   resp.StaffID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Kind:      string(resp.Kind),
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		Conflicts: FromUseCaseConflicts(resp.Conflicts),
	}
}
