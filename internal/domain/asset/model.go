package asset

// Asset is a device reported by the external directory service.
// BillingType is the directory's own classification and may be replaced
// by a per-asset override at billing time.
type Asset struct {
	ID              int    `json:"id"`
	Hostname        string `json:"hostname"`
	BillingType     string `json:"billing_type"`
	BackupDataBytes int64  `json:"backup_data_bytes"`
}
