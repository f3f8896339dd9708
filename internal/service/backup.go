package service

import (
	"github.com/billcraft/billcraft/internal/domain/asset"
	"github.com/billcraft/billcraft/internal/domain/billing"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/shopspring/decimal"
)

// bytesPerTB is 2^40
var bytesPerTB = decimal.NewFromInt(1 << 40)

// BackupService computes backup base fees and storage overage charges.
// Only directory assets participate; manual assets carry no backup
// usage. Classification follows the directory-reported type, not the
// billing override, since the backup agent reports against the device
// as the directory knows it.
type BackupService interface {
	CalculateBackupCharges(assets []*asset.Asset, rates *billing.EffectiveRates) billing.BackupCharges
}

type backupService struct {
	ServiceParams
}

func NewBackupService(params ServiceParams) BackupService {
	return &backupService{
		ServiceParams: params,
	}
}

func (s *backupService) CalculateBackupCharges(assets []*asset.Asset, rates *billing.EffectiveRates) billing.BackupCharges {
	info := billing.BackupInfo{}
	for _, a := range assets {
		info.TotalBackupBytes += a.BackupDataBytes
		if a.BackupDataBytes <= 0 {
			continue
		}
		switch types.AssetBillingType(a.BillingType) {
		case types.AssetBillingTypeWorkstation:
			info.BackedUpWorkstations++
		case types.AssetBillingTypeServer, types.AssetBillingTypeVM:
			info.BackedUpServers++
		}
	}

	totalTB := decimal.NewFromInt(info.TotalBackupBytes).Div(bytesPerTB)
	deviceCount := decimal.NewFromInt(int64(info.BackedUpWorkstations + info.BackedUpServers))
	includedTB := deviceCount.Mul(rates.Get(types.RateKeyBackupIncludedTB))
	overageTB := maxZero(totalTB.Sub(includedTB))

	baseWorkstation := decimal.NewFromInt(int64(info.BackedUpWorkstations)).
		Mul(rates.Get(types.RateKeyBackupBaseFeeWorkstation))
	baseServer := decimal.NewFromInt(int64(info.BackedUpServers)).
		Mul(rates.Get(types.RateKeyBackupBaseFeeServer))
	overageCharge := overageTB.Mul(rates.Get(types.RateKeyBackupPerTBFee))

	return billing.BackupCharges{
		Info:                  info,
		TotalBackupTB:         totalTB,
		IncludedTB:            includedTB,
		OverageTB:             overageTB,
		BaseWorkstationCharge: baseWorkstation,
		BaseServerCharge:      baseServer,
		OverageCharge:         overageCharge,
		TotalCharge:           baseWorkstation.Add(baseServer).Add(overageCharge),
	}
}
