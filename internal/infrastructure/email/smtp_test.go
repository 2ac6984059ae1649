package email

import (
	"strings"
	"testing"

	"github.com/Kevindmm/secret-santa-organizer/internal/application/ports"
)

func TestBodyIncludesAssignmentDetails(t *testing.T) {
	body := Body(ports.AssignmentEmail{
		GameName:         "Office Party",
		MaxPrice:         "20.00",
		ExchangeDate:     "2026-12-18",
		GiverName:        "Alice",
		ReceiverName:     "Bob",
		ReceiverWishList: "socks, coffee",
	})
	for _, want := range []string{"Alice", "Office Party", "Bob", "socks, coffee", "20.00", "2026-12-18"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBodyFallbacks(t *testing.T) {
	body := Body(ports.AssignmentEmail{
		GameName:     "Office Party",
		MaxPrice:     "20.00",
		GiverName:    "Alice",
		ReceiverName: "Bob",
	})
	if !strings.Contains(body, "They haven't shared a wish list") {
		t.Errorf("body missing wish list fallback:\n%s", body)
	}
	if !strings.Contains(body, "to be decided") {
		t.Errorf("body missing exchange date fallback:\n%s", body)
	}
}
