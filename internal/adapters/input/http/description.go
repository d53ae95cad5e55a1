package http

import (
	"fmt"
	"net/http"

	"emulated-hue/internal/domain/response"
)

const descriptionTemplate = `<?xml version="1.0" encoding="UTF-8" ?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
<specVersion>
<major>1</major>
<minor>0</minor>
</specVersion>
<URLBase>http://%[1]s:%[2]d/</URLBase>
<device>
<deviceType>urn:schemas-upnp-org:device:Basic:1</deviceType>
<friendlyName>HASS Bridge (%[1]s)</friendlyName>
<manufacturer>Royal Philips Electronics</manufacturer>
<manufacturerURL>http://www.philips.com</manufacturerURL>
<modelDescription>Philips hue Personal Wireless Lighting</modelDescription>
<modelName>Philips hue bridge 2015</modelName>
<modelNumber>%[3]s</modelNumber>
<modelURL>http://www.meethue.com</modelURL>
<serialNumber>%[4]s</serialNumber>
<UDN>uuid:%[5]s</UDN>
</device>
</root>`

// handleDescription serves the UPnP device description SSDP responses point to.
func (s *Server) handleDescription(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.bridge.GetConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, descriptionTemplate,
		cfg.AdvertisedIP(), cfg.AdvertisedPort(),
		response.BridgeModelID, response.BridgeSerial, response.BridgeUDN)
}
