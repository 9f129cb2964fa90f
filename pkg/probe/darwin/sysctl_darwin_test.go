package darwin

import (
	"errors"
	"testing"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

func TestRamAvailableFromOtherBackend(t *testing.T) {
	ram := New(nil).RAM()

	if _, err := ram.Lookup(probe.RamAvailable); !errors.Is(err, probe.ErrNotSupported) {
		t.Errorf("free pages are not the available memory, got %v", err)
	}
	if _, err := ram.Lookup(probe.RamTotal); err != nil {
		t.Errorf("hw.memsize: %v", err)
	}
}
