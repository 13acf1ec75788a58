package check_block_conflict

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	checkBlockConflict "github.com/m04kA/SPS-SchedulingService/internal/usecase/check_block_conflict"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// ConflictResponse одна пересекающаяся запись
type ConflictResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Reference     string `json:"reference"`
	ClientID      int64  `json:"clientId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

// BlockConflictsResponse HTTP response model
type BlockConflictsResponse struct {
	ConflictingCount int                `json:"conflictingCount"`
	Conflicts        []ConflictResponse `json:"conflicts"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(staffID int64, dateStr, startStr, endStr string) (*checkBlockConflict.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	return &checkBlockConflict.Request{
		StaffID: staffID,
		Date:    date,
		Start:   start,
		End:     end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkBlockConflict.Response) *BlockConflictsResponse {
	conflicts := make([]ConflictResponse, len(resp.Conflicts))
	for i, conflict := range resp.Conflicts {
		conflicts[i] = ConflictResponse{
			AppointmentID: conflict.AppointmentID,
			Reference:     conflict.Reference,
			ClientID:      conflict.ClientID,
			StartTime:     conflict.StartTime.String(),
			EndTime:       conflict.EndTime.String(),
			Status:        conflict.Status,
		}
	}

	return &BlockConflictsResponse{
		ConflictingCount: resp.ConflictingCount,
		Conflicts:        conflicts,
	}
}
