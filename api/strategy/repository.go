package strategy

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settableColumns are the columns replaced on every save. created_at is
// deliberately absent: it is written on insert only.
var settableColumns = []string{
	"start", "pause", "stop",
	"call_entry", "put_entry", "shift_hedge", "first_entry",
	"otm_points", "hedge_points", "shift_points",
	"symbol", "expiry_no", "order_lot",
	"start_time", "end_time",
	"updated_at",
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// GetConfig returns the current document for the client, or nil when none
// exists yet.
func (r *Repository) GetConfig(clientID, strategyID string) (*ConfigModel, error) {
	var config ConfigModel
	err := r.DB.Where("client_id = ? AND strategy_id = ?", clientID, strategyID).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// GetConfigRaw returns the current document as a raw column map for the
// prefill coercion layer, or nil when none exists.
func (r *Repository) GetConfigRaw(clientID, strategyID string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	err := r.DB.Table(ConfigsTableName).
		Where("client_id = ? AND strategy_id = ?", clientID, strategyID).
		Take(&raw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// UpsertConfig atomically inserts or replaces the document keyed by
// (client_id, strategy_id) and returns it as stored. The unique index on
// that pair guarantees at most one row per client and strategy; ON CONFLICT
// keeps the existing created_at while refreshing every settable column.
func (r *Repository) UpsertConfig(config *ConfigModel) (*ConfigModel, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "strategy_id"}},
		DoUpdates: clause.AssignmentColumns(settableColumns),
	}).Create(config).Error
	if err != nil {
		return nil, err
	}

	// Post-write read so the caller sees the row as stored, including the
	// original created_at on updates.
	return r.GetConfig(config.ClientID, config.StrategyID)
}
