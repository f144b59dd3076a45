package strategy

import (
	"context"
	"regexp"

	"github.com/redis/go-redis/v9"
	"github.com/straddleshift/configapi/shared/zaplogger"
	"gorm.io/gorm"
)

// clientIDPattern is the partition-name rule: the client id keys the store
// partition, so it is limited to characters every backing store accepts.
var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,20}$`)

// RecordStore is the authoritative store for current documents.
type RecordStore interface {
	GetConfig(clientID, strategyID string) (*ConfigModel, error)
	GetConfigRaw(clientID, strategyID string) (map[string]interface{}, error)
	UpsertConfig(config *ConfigModel) (*ConfigModel, error)
}

// AuditSink receives one append per successful save. It is best-effort: the
// record store is authoritative, the sink is an observability trail.
type AuditSink interface {
	Append(clientID string, config *ConfigModel) error
}

type Service struct {
	store      RecordStore
	audit      AuditSink
	cache      *Cache
	validator  *Validator
	strategyID string
}

func NewService(db *gorm.DB, redisClient *redis.Client, sink AuditSink, strategyID string) *Service {
	return newService(NewRepository(db), sink, NewCache(redisClient), strategyID)
}

func newService(store RecordStore, sink AuditSink, cache *Cache, strategyID string) *Service {
	return &Service{
		store:      store,
		audit:      sink,
		cache:      cache,
		validator:  NewValidator(strategyID, Grid),
		strategyID: strategyID,
	}
}

// checkClientID rejects an empty or malformed client id before validation
// runs and before any store access.
func (s *Service) checkClientID(clientID string) error {
	if clientID == "" {
		return &IdentityError{Reason: "client_id is required"}
	}
	if !clientIDPattern.MatchString(clientID) {
		return &IdentityError{Reason: "client_id may only contain letters, digits, '-' and '_' (max 20 chars)"}
	}
	return nil
}

// LoadExisting returns the current document for the client, or nil when the
// client has never saved one.
func (s *Service) LoadExisting(ctx context.Context, clientID string) (*ConfigModel, error) {
	if err := s.checkClientID(clientID); err != nil {
		return nil, err
	}

	if cached := s.cache.Get(ctx, clientID, s.strategyID); cached != nil {
		return cached, nil
	}

	config, err := s.store.GetConfig(clientID, s.strategyID)
	if err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}
	if config != nil {
		s.cache.Set(ctx, config)
	}
	return config, nil
}

// Prefill returns the form values for a client: the stored document coerced
// field by field with defaults for anything missing or corrupt, or pure
// defaults when the client is unknown or has no document yet.
func (s *Service) Prefill(ctx context.Context, clientID string) (RawSubmission, error) {
	if s.checkClientID(clientID) != nil {
		return defaultSubmission(), nil
	}

	raw, err := s.store.GetConfigRaw(clientID, s.strategyID)
	if err != nil {
		return defaultSubmission(), &StoreError{Op: "read", Err: err}
	}

	return RawSubmission{
		Start:       preBool(raw, "start", false),
		Pause:       preBool(raw, "pause", false),
		Stop:        preBool(raw, "stop", false),
		CallEntry:   preBool(raw, "call_entry", false),
		PutEntry:    preBool(raw, "put_entry", false),
		ShiftHedge:  preBool(raw, "shift_hedge", false),
		FirstEntry:  preBool(raw, "first_entry", false),
		OTMPoints:   preInt(raw, "otm_points", 0),
		HedgePoints: preInt(raw, "hedge_points", 0),
		ShiftPoints: preInt(raw, "shift_points", 0),
		Symbol:      preStr(raw, "symbol", ""),
		ExpiryNo:    preInt(raw, "expiry_no", 0),
		OrderLot:    preInt(raw, "order_lot", 1),
		StartTime:   preTime(raw, "start_time", DefaultStart, Grid).String(),
		EndTime:     preTime(raw, "end_time", DefaultEnd, Grid).String(),
	}, nil
}

// Save validates the submission, upserts the authoritative document and
// appends one audit entry. The returned warning is non-empty when the audit
// append failed after a successful record write; the save still succeeds.
func (s *Service) Save(ctx context.Context, clientID string, sub RawSubmission) (*ConfigModel, string, error) {
	if err := s.checkClientID(clientID); err != nil {
		return nil, "", err
	}

	config, violations := s.validator.Validate(sub)
	if len(violations) > 0 {
		return nil, "", &ValidationError{Violations: violations}
	}
	config.ClientID = clientID

	stored, err := s.store.UpsertConfig(config)
	if err != nil {
		return nil, "", &StoreError{Op: "upsert", Err: err}
	}
	s.cache.Set(ctx, stored)

	warning := ""
	if err := s.audit.Append(clientID, stored); err != nil {
		warning = "audit log append failed: " + err.Error()
		zaplogger.Warn("audit log append failed", zaplogger.Fields{
			"client_id":   clientID,
			"strategy_id": s.strategyID,
			"error":       err.Error(),
		})
	}

	return stored, warning, nil
}
