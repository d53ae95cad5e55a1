package response

import "emulated-hue/internal/domain/model"

const (
	BridgeName       = "Philips hue"
	BridgeModelID    = "BSB001"
	BridgeSwVersion  = "01003542"
	BridgeAPIVersion = "1.11.0"
	BridgeMac        = "00:17:88:10:22:01"
	BridgeID         = "001788FFFE102201"
	BridgeUDN        = "2f402f80-da50-11e1-9b23-001788102201"
	BridgeSerial     = "001788102201"
)

// BridgeConfig is the config block of the bridge.
type BridgeConfig struct {
	Name       string `json:"name"`
	SwVersion  string `json:"swversion"`
	APIVersion string `json:"apiversion"`
	Mac        string `json:"mac"`
	BridgeID   string `json:"bridgeid"`
	ModelID    string `json:"modelid"`
	IPAddress  string `json:"ipaddress"`
	LinkButton bool   `json:"linkbutton"`
}

func NewBridgeConfig(cfg *model.Config) BridgeConfig {
	return BridgeConfig{
		Name:       BridgeName,
		SwVersion:  BridgeSwVersion,
		APIVersion: BridgeAPIVersion,
		Mac:        BridgeMac,
		BridgeID:   BridgeID,
		ModelID:    BridgeModelID,
		IPAddress:  cfg.AdvertisedIP(),
		LinkButton: true,
	}
}

type FullState struct {
	Lights map[string]*Light `json:"lights"`
	Groups map[string]any    `json:"groups"`
	Config BridgeConfig      `json:"config"`
}
