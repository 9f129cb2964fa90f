package procfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/clinfo"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/nvidia"
)

const drmClassPath = "/sys/class/drm"

const nvidiaVendorId = "0x10de"

type drmCard struct {
	name   string
	device string // sysfs device directory of the card
	slot   string // PCI slot, e.g. 0000:01:00.0
	vendor string // PCI vendor id, e.g. 0x10de

	// device tree properties of cards that are not on the PCI bus
	driver     string // e.g. v3d
	compatible string // e.g. brcm,2712-v3d
}

func (c drmCard) isPci() bool {
	return c.slot != "" || c.vendor != ""
}

// GPUs lists the PCI DRM cards. Without any, lshw is asked, and only then are the platform
// cards of SoCs reported from their device tree properties.
func (p *Probe) GPUs() ([]probe.Facts, error) {
	cards, err := p.drmCards()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error listing drm cards: %w", err)
	}

	var adapters, platformAdapters []probe.Facts
	for _, card := range cards {
		if card.isPci() {
			adapters = append(adapters, p.cardFacts(card))
		} else if facts := platformCardFacts(card); facts != nil {
			platformAdapters = append(platformAdapters, facts)
		}
	}
	if len(adapters) > 0 {
		return adapters, nil
	}

	adapters, err = p.lshwGpus()
	if (err == nil && len(adapters) > 0) || len(platformAdapters) == 0 {
		return adapters, err
	}
	return platformAdapters, nil
}

// drmCards returns card0, card1, ... in index order, skipping connectors such as
// card0-HDMI-A-1 and render nodes. Cards sharing a PCI slot are reported once.
func (p *Probe) drmCards() ([]drmCard, error) {
	entries, err := fs.ReadDir(p.fsys, strings.TrimPrefix(drmClassPath, "/"))
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		index, isCard := strings.CutPrefix(name, "card")
		if !isCard || strings.Contains(index, "-") {
			continue
		}
		if _, err := strconv.Atoi(index); err != nil {
			continue
		}
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		i, _ := strconv.Atoi(strings.TrimPrefix(a, "card"))
		j, _ := strconv.Atoi(strings.TrimPrefix(b, "card"))
		return i - j
	})

	var cards []drmCard
	seenSlots := make(map[string]bool)
	for _, name := range names {
		card := drmCard{
			name:   name,
			device: path.Join(drmClassPath, name, "device"),
		}
		card.vendor, _ = p.readFile(path.Join(card.device, "vendor"))

		if uevent, err := p.readFile(path.Join(card.device, "uevent")); err == nil {
			properties := keyValues(uevent, "=")
			card.slot = properties["PCI_SLOT_NAME"]
			card.driver = properties["DRIVER"]
			card.compatible = properties["OF_COMPATIBLE_0"]
		}
		if card.slot != "" {
			if seenSlots[card.slot] {
				continue
			}
			seenSlots[card.slot] = true
		}

		cards = append(cards, card)
	}
	return cards, nil
}

func (p *Probe) cardFacts(card drmCard) probe.Facts {
	return probe.Facts{
		probe.GpuVendor: p.cardVendor(card),
		probe.GpuModel:  p.cardModel(card),
		probe.GpuMemory: p.cardMemory(card),
	}
}

// deviceTreeVendors maps the vendor prefix of device tree compatible strings.
var deviceTreeVendors = map[string]string{
	"arm":      "Arm",
	"brcm":     "Broadcom",
	"img":      "Imagination",
	"mediatek": "MediaTek",
	"nvidia":   "NVIDIA",
	"qcom":     "Qualcomm",
	"rockchip": "Rockchip",
	"vivante":  "Vivante",
}

// platformCardFacts describes a card of a SoC, e.g. vc4 or v3d. Firmware framebuffers such as
// simpledrm are not adapters and yield nil.
func platformCardFacts(card drmCard) probe.Facts {
	if card.driver == "" || strings.HasSuffix(card.driver, "framebuffer") {
		return nil
	}

	vendor, model, found := strings.Cut(card.compatible, ",")
	if !found {
		vendor, model = "", card.driver
	}
	if name, known := deviceTreeVendors[vendor]; known {
		vendor = name
	}
	return probe.Facts{
		probe.GpuVendor: stringFact(vendor),
		probe.GpuModel:  stringFact(model),
	}
}

// cardMemory prefers the size the amdgpu driver reports, then asks nvidia-smi or clinfo.
func (p *Probe) cardMemory(card drmCard) func() (probe.Raw, error) {
	vramTotal := p.fileFact(path.Join(card.device, "mem_info_vram_total"), probe.UnitBytes)
	return func() (probe.Raw, error) {
		raw, err := vramTotal()
		if err == nil || card.slot == "" {
			return raw, err
		}
		if card.vendor == nvidiaVendorId {
			return nvidia.Query(p.runner, card.slot, "memory.total")
		}
		return clinfo.GlobalMemSize(p.runner, card.slot)
	}
}

func (p *Probe) cardVendor(card drmCard) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		if card.vendor != "" {
			return probe.Raw{Value: card.vendor}, nil
		}
		properties, err := p.lspci(card)
		if err != nil {
			return probe.Raw{}, err
		}
		return probe.Raw{Value: properties["Vendor"]}, nil
	}
}

// cardModel prefers the name the driver reports, then asks the vendor tool, then lspci.
func (p *Probe) cardModel(card drmCard) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		if name, err := p.readFile(path.Join(card.device, "product_name")); err == nil && name != "" {
			return probe.Raw{Value: name}, nil
		}

		var errs []error
		if card.vendor == nvidiaVendorId && card.slot != "" {
			raw, err := nvidia.Query(p.runner, card.slot, "name")
			if err == nil {
				return raw, nil
			}
			errs = append(errs, err)
		}

		properties, err := p.lspci(card)
		if err == nil && properties["Device"] != "" {
			return probe.Raw{Value: properties["Device"]}, nil
		}
		errs = append(errs, err)
		return probe.Raw{}, errors.Join(errs...)
	}
}

// lspci returns the machine readable properties of the card's PCI device.
func (p *Probe) lspci(card drmCard) (map[string]string, error) {
	if card.slot == "" {
		return nil, fmt.Errorf("%s: no pci slot: %w", card.name, probe.ErrNotSupported)
	}
	output, err := p.run("lspci", "-vmm", "-s", card.slot)
	if err != nil {
		return nil, err
	}
	return keyValues(output, ":"), nil
}
