package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"github.com/MKhiriev/fortuna/models"
)

// clientInfoFromRequest describes the client of r for the session listing.
func clientInfoFromRequest(r *http.Request) *models.ClientInfo {
	raw := r.UserAgent()

	info := &models.ClientInfo{
		UserAgent: raw,
		IP:        clientIP(r),
	}
	if raw == "" {
		return info
	}

	ua := useragent.New(raw)
	info.Browser, _ = ua.Browser()
	info.OS = ua.OSInfo().Name

	// iPads announce themselves as mobile Safari
	switch {
	case ua.Bot():
		info.Device = "bot"
	case strings.Contains(raw, "iPad") || strings.Contains(raw, "Tablet"):
		info.Device = "tablet"
	case ua.Mobile():
		info.Device = "mobile"
	default:
		info.Device = "desktop"
	}

	return info
}

// clientIP returns the host part of the peer address. Behind a trusted proxy
// RealIP has already replaced RemoteAddr with the forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
