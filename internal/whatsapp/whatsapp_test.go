package whatsapp

import (
	"strings"
	"testing"
)

func TestBuildShareLinkMobile(t *testing.T) {
	links := BuildShareLink(PlatformMobile, "", "hola mundo")

	if links.Primary != "whatsapp://send?phone="+DefaultPhone+"&text=hola%20mundo" {
		t.Fatalf("primary: %q", links.Primary)
	}
	if links.Fallback != "https://wa.me/"+DefaultPhone+"?text=hola%20mundo" {
		t.Fatalf("fallback: %q", links.Fallback)
	}
}

func TestBuildShareLinkDesktop(t *testing.T) {
	links := BuildShareLink(PlatformDesktop, "573001112233", "pedido")

	if links.Primary != "https://web.whatsapp.com/send?phone=573001112233&text=pedido" {
		t.Fatalf("primary: %q", links.Primary)
	}
	if links.Fallback != "" {
		t.Fatalf("desktop has no fallback: %q", links.Fallback)
	}
}

func TestEncodeTextKeepsEmojiAndNewlines(t *testing.T) {
	links := BuildShareLink(PlatformMobile, "", "línea 1\nlínea 2 🍴")

	if strings.Contains(links.Primary, "+") {
		t.Fatalf("spaces must encode as %%20: %q", links.Primary)
	}
	if !strings.Contains(links.Primary, "%0A") {
		t.Fatalf("newlines must be percent-encoded: %q", links.Primary)
	}
}
