package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// TrustedDeviceRepositoryImpl implements domain.TrustedDeviceRepository using GORM
type TrustedDeviceRepositoryImpl struct {
	db *gorm.DB
}

// DBTrustedDevice represents the database model for TrustedDevice
type DBTrustedDevice struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index:idx_trusted_user_token"`
	TokenHash string `gorm:"index:idx_trusted_user_token;size:64"`
	Label     string `gorm:"size:255"`
	LastSeen  time.Time
	CreatedAt time.Time
}

func (DBTrustedDevice) TableName() string {
	return "trusted_devices"
}

// NewTrustedDeviceRepository creates a new trusted device repository
func NewTrustedDeviceRepository(db *gorm.DB) domain.TrustedDeviceRepository {
	return &TrustedDeviceRepositoryImpl{db: db}
}

// Register implements domain.TrustedDeviceRepository
func (r *TrustedDeviceRepositoryImpl) Register(ctx context.Context, device *domain.TrustedDevice) error {
	dbDevice := &DBTrustedDevice{
		UserID:    device.UserID,
		TokenHash: device.TokenHash,
		Label:     device.Label,
		LastSeen:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(dbDevice).Error; err != nil {
		return err
	}
	device.ID = dbDevice.ID
	return nil
}

// IsTrusted implements domain.TrustedDeviceRepository. A hit also bumps the
// device's last-seen timestamp.
func (r *TrustedDeviceRepositoryImpl) IsTrusted(ctx context.Context, userID uint, tokenHash string) (bool, error) {
	if tokenHash == "" {
		return false, nil
	}
	var dbDevice DBTrustedDevice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		First(&dbDevice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	r.db.WithContext(ctx).Model(&dbDevice).Update("last_seen", time.Now())
	return true, nil
}

// ListByUser implements domain.TrustedDeviceRepository
func (r *TrustedDeviceRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.TrustedDevice, error) {
	var dbDevices []DBTrustedDevice
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&dbDevices).Error; err != nil {
		return nil, err
	}
	devices := make([]domain.TrustedDevice, 0, len(dbDevices))
	for _, d := range dbDevices {
		devices = append(devices, domain.TrustedDevice{
			ID:        d.ID,
			UserID:    d.UserID,
			TokenHash: d.TokenHash,
			Label:     d.Label,
			LastSeen:  d.LastSeen,
			CreatedAt: d.CreatedAt,
		})
	}
	return devices, nil
}

// Delete implements domain.TrustedDeviceRepository
func (r *TrustedDeviceRepositoryImpl) Delete(ctx context.Context, userID uint, deviceID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, deviceID).Delete(&DBTrustedDevice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Trusted device")
	}
	return nil
}
