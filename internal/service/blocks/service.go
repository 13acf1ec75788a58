package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	blockRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/block"
	"github.com/m04kA/SPS-SchedulingService/internal/service/blocks/models"
)

// Service сервис для чтения и удаления блокировок.
// Создание блоков живёт в отдельном usecase: blocking-блок перед записью
// проверяется на конфликты с существующими записями
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// GetByStaffAndDate получает блоки мастера на дату
func (s *Service) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*models.BlockListResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	result, err := s.blockRepo.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.logger.Error("GetByStaffAndDate: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetByStaffAndDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(result), nil
}

// Delete удаляет блок. Удаление available-блока возвращает в силу
// blocking-блоки, которые он перекрывал
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: block id must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", id)
	return nil
}
