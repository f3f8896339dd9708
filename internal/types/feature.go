package types

import (
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/samber/lo"
)

// FeatureType names one of the managed-service features whose value can
// come from the plan or be overridden per client.
type FeatureType string

const (
	FeatureTypeAntivirus         FeatureType = "antivirus"
	FeatureTypeSOC               FeatureType = "soc"
	FeatureTypePasswordManager   FeatureType = "password_manager"
	FeatureTypeSAT               FeatureType = "sat"
	FeatureTypeEmailSecurity     FeatureType = "email_security"
	FeatureTypeNetworkManagement FeatureType = "network_management"
)

// FeatureNotIncluded is the default value for a feature the plan does
// not cover.
const FeatureNotIncluded = "Not Included"

func (t FeatureType) String() string {
	return string(t)
}

// AllFeatureTypes returns every known feature type in a stable order.
// The effective feature set always carries a value for each of these.
func AllFeatureTypes() []FeatureType {
	return []FeatureType{
		FeatureTypeAntivirus,
		FeatureTypeSOC,
		FeatureTypePasswordManager,
		FeatureTypeSAT,
		FeatureTypeEmailSecurity,
		FeatureTypeNetworkManagement,
	}
}

func (t FeatureType) Validate() error {
	if !lo.Contains(AllFeatureTypes(), t) {
		return ierr.NewError("invalid feature type").
			WithHint("Please provide a valid feature type").
			WithReportableDetails(map[string]any{
				"allowed": AllFeatureTypes(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
