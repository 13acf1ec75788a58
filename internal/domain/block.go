package domain

import (
	"time"

	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// BlockKind distinguishes the two manual block behaviours.
type BlockKind string

const (
	// BlockKindBlocking закрывает время мастера так же, как запись
	BlockKindBlocking BlockKind = "blocking"

	// BlockKindAvailable наоборот открывает время, закрытое blocking-блоком
	BlockKindAvailable BlockKind = "available"
)

// Block is a manual time block for a single staff member on a single date.
// A blocking block occupies time like an appointment; an available block
// never occupies time and instead reopens time closed by blocking blocks.
type Block struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      BlockKind
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true for blocks that occupy time.
func (b *Block) IsBlocking() bool {
	return b.Kind == BlockKindBlocking
}

// IsAvailable returns true for override blocks that reopen time.
func (b *Block) IsAvailable() bool {
	return b.Kind == BlockKindAvailable
}

// Interval returns the block interval in minutes since midnight.
func (b *Block) Interval() (MinuteInterval, error) {
	start, err := b.StartTime.MinutesFromMidnight()
	if err != nil {
		return MinuteInterval{}, err
	}
	end, err := b.EndTime.MinutesFromMidnight()
	if err != nil {
		return MinuteInterval{}, err
	}
	return MinuteInterval{Start: start, End: end}, nil
}
