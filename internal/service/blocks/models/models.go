package models

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// BlockResponse ответ с данными блока
type BlockResponse struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffId"`
	Date      string    `json:"date"`      // "2026-08-28"
	StartTime string    `json:"startTime"` // "13:00"
	EndTime   string    `json:"endTime"`   // "14:00"
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlockListResponse ответ со списком блоков
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.Block) *BlockResponse {
	if b == nil {
		return nil
	}
	return &BlockResponse{
		ID:        b.ID,
		StaffID:   b.StaffID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Kind:      string(b.Kind),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}
	for _, b := range blocks {
		if converted := FromDomainBlock(b); converted != nil {
			resp.Blocks = append(resp.Blocks, *converted)
		}
	}
	return resp
}
