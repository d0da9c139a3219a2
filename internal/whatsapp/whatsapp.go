package whatsapp

import (
	"net/url"
	"strings"
)

// DefaultPhone is the kitchen's WhatsApp business number.
const DefaultPhone = "573023931292"

const (
	PlatformMobile  = "mobile"
	PlatformDesktop = "desktop"
)

// Links are the share URLs a client should try, in order. Mobile gets
// the app scheme with a wa.me fallback for devices without the app.
type Links struct {
	Primary  string `json:"primary"`
	Fallback string `json:"fallback,omitempty"`
}

// encodeText percent-encodes the message the way browsers do, so spaces
// survive WhatsApp's query parsing as %20 rather than '+'.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// BuildShareLink builds the share URLs for a platform. An empty phone
// falls back to the kitchen's number.
func BuildShareLink(platform, phone, text string) Links {
	if phone == "" {
		phone = DefaultPhone
	}
	encoded := encodeText(text)
	if platform == PlatformMobile {
		return Links{
			Primary:  "whatsapp://send?phone=" + phone + "&text=" + encoded,
			Fallback: "https://wa.me/" + phone + "?text=" + encoded,
		}
	}
	return Links{
		Primary: "https://web.whatsapp.com/send?phone=" + phone + "&text=" + encoded,
	}
}
