package strategy

import (
	"time"

	"github.com/straddleshift/configapi/pkg/timegrid"
)

const ConfigsTableName = "strategy_configs"

// Allowed trading time window, 1-minute resolution.
var (
	MinTime = timegrid.New(9, 15, 0)
	MaxTime = timegrid.New(15, 30, 0)

	DefaultStart = timegrid.New(9, 15, 0)
	DefaultEnd   = timegrid.New(15, 15, 0)
)

// Grid holds the allowed trading timestamps, built once per process.
var Grid = timegrid.MustBuild(MinTime, MaxTime, 1)

// ConfigModel is the authoritative strategy configuration for one client.
// At most one row exists per (client_id, strategy_id).
type ConfigModel struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ClientID    string    `gorm:"uniqueIndex:idx_client_strategy,priority:1;type:varchar(20)" json:"client_id"`
	StrategyID  string    `gorm:"uniqueIndex:idx_client_strategy,priority:2;type:varchar(20)" json:"strategy_id"`
	Start       bool      `json:"start"`
	Pause       bool      `json:"pause"`
	Stop        bool      `json:"stop"`
	CallEntry   bool      `json:"call_entry"`
	PutEntry    bool      `json:"put_entry"`
	ShiftHedge  bool      `json:"shift_hedge"`
	FirstEntry  bool      `json:"first_entry"`
	OTMPoints   int       `gorm:"column:otm_points" json:"otm_points"`
	HedgePoints int       `json:"hedge_points"`
	ShiftPoints int       `json:"shift_points"`
	Symbol      string    `json:"symbol"`
	ExpiryNo    int       `json:"expiry_no"`
	OrderLot    int       `json:"order_lot"`
	StartTime   string    `gorm:"type:varchar(8)" json:"start_time"`
	EndTime     string    `gorm:"type:varchar(8)" json:"end_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConfigModel) TableName() string {
	return ConfigsTableName
}

// RawSubmission is one save action's worth of operator input, built once and
// passed by value through validation and upsert.
type RawSubmission struct {
	Start       bool   `json:"start"`
	Pause       bool   `json:"pause"`
	Stop        bool   `json:"stop"`
	CallEntry   bool   `json:"call_entry"`
	PutEntry    bool   `json:"put_entry"`
	ShiftHedge  bool   `json:"shift_hedge"`
	FirstEntry  bool   `json:"first_entry"`
	OTMPoints   int    `json:"otm_points"`
	HedgePoints int    `json:"hedge_points"`
	ShiftPoints int    `json:"shift_points"`
	Symbol      string `json:"symbol"`
	ExpiryNo    int    `json:"expiry_no"`
	OrderLot    int    `json:"order_lot"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// defaultSubmission returns the prefill values used when no document exists
// yet for a client.
func defaultSubmission() RawSubmission {
	return RawSubmission{
		OrderLot:  1,
		StartTime: DefaultStart.String(),
		EndTime:   DefaultEnd.String(),
	}
}
