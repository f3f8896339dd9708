package types

// RateKey names one per-unit rate in the effective rate set.
type RateKey string

const (
	RateKeyPerUserCost              RateKey = "per_user_cost"
	RateKeyPerWorkstationCost       RateKey = "per_workstation_cost"
	RateKeyPerServerCost            RateKey = "per_server_cost"
	RateKeyPerVMCost                RateKey = "per_vm_cost"
	RateKeyPerSwitchCost            RateKey = "per_switch_cost"
	RateKeyPerFirewallCost          RateKey = "per_firewall_cost"
	RateKeyPerHourTicketCost        RateKey = "per_hour_ticket_cost"
	RateKeyBackupBaseFeeWorkstation RateKey = "backup_base_fee_workstation"
	RateKeyBackupBaseFeeServer      RateKey = "backup_base_fee_server"
	RateKeyBackupIncludedTB         RateKey = "backup_included_tb"
	RateKeyBackupPerTBFee           RateKey = "backup_per_tb_fee"
)

func (k RateKey) String() string {
	return string(k)
}

// AllRateKeys returns every per-unit rate key in a stable order.
// The effective rate set always carries a value for each of these.
func AllRateKeys() []RateKey {
	return []RateKey{
		RateKeyPerUserCost,
		RateKeyPerWorkstationCost,
		RateKeyPerServerCost,
		RateKeyPerVMCost,
		RateKeyPerSwitchCost,
		RateKeyPerFirewallCost,
		RateKeyPerHourTicketCost,
		RateKeyBackupBaseFeeWorkstation,
		RateKeyBackupBaseFeeServer,
		RateKeyBackupIncludedTB,
		RateKeyBackupPerTBFee,
	}
}

// DefaultSupportLevel is used when neither the plan nor an override
// specifies a support level label.
const DefaultSupportLevel = "Billed Hourly"
