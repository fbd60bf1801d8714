package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/logging"
	"github.com/moneynest/money_tracker_app/internal/utils"
)

// pinStorageKey is the KV key holding the PIN record.
const pinStorageKey = "security.pin"

type pinRecord struct {
	Hash      string    `json:"hash"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// securityService is the local PIN gate. The bcrypt hash lives under its
// own storage key; there are no sessions or tokens to manage.
type securityService struct {
	kv portsrepo.KVStore
}

// NewSecurityService creates a new SecurityService.
func NewSecurityService(kv portsrepo.KVStore) portssvc.SecuritySvcFacade {
	return &securityService{kv: kv}
}

// Ensure securityService implements the portssvc.SecuritySvcFacade interface
var _ portssvc.SecuritySvcFacade = (*securityService)(nil)

func (s *securityService) SetPIN(ctx context.Context, pin string) error {
	logger := logging.FromCtx(ctx)

	hash, err := utils.HashPIN(pin)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(pinRecord{Hash: hash, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode PIN record: %w", err)
	}
	if err := s.kv.Save(ctx, pinStorageKey, raw); err != nil {
		logger.Error("Failed to persist PIN", slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist PIN: %w", err)
	}

	logger.Info("PIN updated")
	return nil
}

// VerifyPIN reports whether pin matches the stored hash. No stored PIN, or
// a corrupt record, verifies as false rather than failing.
func (s *securityService) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	record, ok := s.loadRecord(ctx)
	if !ok {
		return false, nil
	}
	return utils.CheckPINHash(pin, record.Hash), nil
}

func (s *securityService) IsPINSet(ctx context.Context) (bool, error) {
	_, ok := s.loadRecord(ctx)
	return ok, nil
}

func (s *securityService) loadRecord(ctx context.Context) (pinRecord, bool) {
	logger := logging.FromCtx(ctx)

	raw, found, err := s.kv.Load(ctx, pinStorageKey)
	if err != nil {
		logger.Warn("Failed to load PIN record", slog.String("error", err.Error()))
		return pinRecord{}, false
	}
	if !found {
		return pinRecord{}, false
	}

	var record pinRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		logger.Warn("Corrupt PIN record ignored", slog.String("error", err.Error()))
		return pinRecord{}, false
	}
	return record, record.Hash != ""
}
