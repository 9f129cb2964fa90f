package procfs

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

const testDir = "../../../test_data"

func machineProbe(t *testing.T, machine string) *Probe {
	t.Helper()
	machineDir := filepath.Join(testDir, "machines", machine)
	runner, err := probe.NewFileRunner(filepath.Join(machineDir, "commands.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	return New(machineDir, runner)
}

func lookup(t *testing.T, facts probe.Facts, key probe.Key) probe.Raw {
	t.Helper()
	raw, err := facts.Lookup(key)
	if err != nil {
		t.Fatalf("%s: %v", key, err)
	}
	return raw
}

func TestCpuFromFiles(t *testing.T) {
	cpu := machineProbe(t, "xps13-7390").CPU()

	if raw := lookup(t, cpu, probe.CpuVendor); raw.Value != "GenuineIntel" {
		t.Errorf("unexpected vendor %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuModel); raw.Value != "Intel(R) Core(TM) i7-10710U CPU @ 1.10GHz" {
		t.Errorf("unexpected model %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuLogicalCores); raw.Value != 12 {
		t.Errorf("unexpected logical cores %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuPhysicalCores); raw.Value != 6 {
		t.Errorf("unexpected physical cores %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuFrequency); raw.Value != "1100000" || raw.Unit != probe.UnitKHz {
		t.Errorf("base frequency should win over max frequency, got %v", raw)
	}
}

func TestCpuArm64(t *testing.T) {
	cpu := machineProbe(t, "raspberry-pi-5").CPU()

	for _, key := range []probe.Key{probe.CpuVendor, probe.CpuModel, probe.CpuPhysicalCores} {
		if _, err := cpu.Lookup(key); !errors.Is(err, probe.ErrNotSupported) {
			t.Errorf("%s: expected ErrNotSupported, got %v", key, err)
		}
	}
	if raw := lookup(t, cpu, probe.CpuLogicalCores); raw.Value != 4 {
		t.Errorf("unexpected logical cores %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuFrequency); raw.Value != "2400000" {
		t.Errorf("unexpected frequency %v", raw)
	}
}

func TestCpuFrequencyWithoutBase(t *testing.T) {
	// the i5-3570K only has cpuinfo_max_freq, its 3.8 GHz turbo clock
	cpu := machineProbe(t, "i5-3570k+arc-a580+gtx1080ti").CPU()
	if raw, err := cpu.Lookup(probe.CpuFrequency); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("max frequency should not be taken as base on x86, got %v %v", raw, err)
	}

	cpuInfo := "processor\t: 0\nvendor_id\t: AuthenticAMD\nmodel name\t: AMD Ryzen 7 5800X 8-Core Processor\n"
	p := NewFS(fstest.MapFS{
		"proc/cpuinfo":                                         {Data: []byte(cpuInfo)},
		"sys/devices/system/cpu/cpu0/cpufreq/base_frequency":   {Data: []byte("3800000\n")},
		"sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq": {Data: []byte("4850000\n")},
	}, nil)
	if raw := lookup(t, p.CPU(), probe.CpuFrequency); raw.Value != "3800000" {
		t.Errorf("base frequency should win, got %v", raw)
	}
}

func TestCpuArmv7(t *testing.T) {
	cpuInfo := `Processor	: ARMv7 Processor rev 4 (v7l)
processor	: 0
BogoMIPS	: 38.40

processor	: 1
BogoMIPS	: 38.40

Hardware	: BCM2835
`
	p := NewFS(fstest.MapFS{
		"proc/cpuinfo":                                         {Data: []byte(cpuInfo)},
		"sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq": {Data: []byte("1200000\n")},
	}, nil)

	cpu := p.CPU()
	if raw := lookup(t, cpu, probe.CpuModel); raw.Value != "ARMv7 Processor rev 4 (v7l)" {
		t.Errorf("unexpected model %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuLogicalCores); raw.Value != 2 {
		t.Errorf("unexpected logical cores %v", raw)
	}
	if raw := lookup(t, cpu, probe.CpuFrequency); raw.Value != "1200000" {
		t.Errorf("arm has no base clock, expected the max frequency, got %v", raw)
	}
}

func TestMissingProc(t *testing.T) {
	p := NewFS(fstest.MapFS{}, nil)

	for _, facts := range []probe.Facts{p.CPU(), p.RAM(), p.OS()} {
		for key := range facts {
			if _, err := facts.Lookup(key); err == nil {
				t.Errorf("%s: expected an error on an empty file system", key)
			}
		}
	}

	_, err := p.CPU().Lookup(probe.CpuModel)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	gpus, err := p.GPUs()
	if err != nil {
		t.Fatalf("no adapters is not an error: %v", err)
	}
	if len(gpus) != 0 {
		t.Fatalf("expected no adapters, got %d", len(gpus))
	}
}

func TestMemInfo(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		ram := machineProbe(t, "xps13-7390").RAM()
		if raw := lookup(t, ram, probe.RamTotal); raw.Value != "16096884" || raw.Unit != probe.UnitKiB {
			t.Errorf("unexpected total %v", raw)
		}
		if raw := lookup(t, ram, probe.RamAvailable); raw.Value != "9581204" || raw.Unit != probe.UnitKiB {
			t.Errorf("unexpected available %v", raw)
		}
	})

	t.Run("old kernel", func(t *testing.T) {
		p := NewFS(fstest.MapFS{
			"proc/meminfo": {Data: []byte("MemTotal:        2048000 kB\nMemFree:          512000 kB\n")},
		}, nil)
		if raw := lookup(t, p.RAM(), probe.RamAvailable); raw.Value != "512000" {
			t.Errorf("expected MemFree as fallback, got %v", raw)
		}
	})
}

func TestOsFromFiles(t *testing.T) {
	tests := map[string]map[probe.Key]string{
		"xps13-7390": {
			probe.OsFamily:  "Linux",
			probe.OsName:    "Ubuntu 24.04.1 LTS",
			probe.OsVersion: "24.04",
			probe.OsKernel:  "6.8.0-45-generic",
			probe.OsArch:    "x86_64",
		},
		"raspberry-pi-5": {
			probe.OsFamily:  "Linux",
			probe.OsName:    "Debian GNU/Linux 12 (bookworm)",
			probe.OsVersion: "12",
			probe.OsKernel:  "6.6.51+rpt-rpi-2712",
			probe.OsArch:    "aarch64",
		},
	}

	for machine, want := range tests {
		t.Run(machine, func(t *testing.T) {
			facts := machineProbe(t, machine).OS()
			for key, value := range want {
				if raw := lookup(t, facts, key); raw.Value != value {
					t.Errorf("%s: got %q, want %q", key, raw.Value, value)
				}
			}
		})
	}
}

func TestGpusFromFiles(t *testing.T) {
	gpus, err := machineProbe(t, "i5-3570k+arc-a580+gtx1080ti").GPUs()
	if err != nil {
		t.Fatal(err)
	}
	if len(gpus) != 2 {
		t.Fatalf("expected 2 adapters, got %d", len(gpus))
	}

	arc, gtx := gpus[0], gpus[1]
	if raw := lookup(t, arc, probe.GpuModel); raw.Value != "DG2 [Arc A580]" {
		t.Errorf("unexpected arc model %v", raw)
	}
	if _, err := arc.Lookup(probe.GpuMemory); !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("i915 does not report vram and clinfo is not installed, got %v", err)
	}
	if raw := lookup(t, gtx, probe.GpuVendor); raw.Value != "0x10de" {
		t.Errorf("unexpected nvidia vendor %v", raw)
	}
	if raw := lookup(t, gtx, probe.GpuModel); raw.Value != "NVIDIA GeForce GTX 1080 Ti" {
		t.Errorf("unexpected nvidia model %v", raw)
	}
	if raw := lookup(t, gtx, probe.GpuMemory); raw.Value != "11264 MiB" {
		t.Errorf("unexpected nvidia memory %v", raw)
	}
}

func TestAmdGpu(t *testing.T) {
	device := "sys/class/drm/card1/device/"
	// card2 shares the PCI slot of card1, card10 has no slot at all
	p := NewFS(fstest.MapFS{
		device + "vendor":                      {Data: []byte("0x1002\n")},
		device + "product_name":                {Data: []byte("AMD Radeon RX 6800\n")},
		device + "mem_info_vram_total":         {Data: []byte("17163091968\n")},
		device + "uevent":                      {Data: []byte("DRIVER=amdgpu\nPCI_SLOT_NAME=0000:0b:00.0\n")},
		"sys/class/drm/card1-DP-2/status":      {Data: []byte("connected\n")},
		"sys/class/drm/card2/device/uevent":    {Data: []byte("DRIVER=amdgpu\nPCI_SLOT_NAME=0000:0b:00.0\n")},
		"sys/class/drm/card2/device/vendor":    {Data: []byte("0x1002\n")},
		"sys/class/drm/controlD64/dev":         {Data: []byte("226:64\n")},
		"sys/class/drm/card10/device/vendor":   {Data: []byte("0x1af4\n")},
		"sys/class/drm/card10/device/uevent":   {Data: []byte("DRIVER=virtio-pci\n")},
		"sys/class/drm/cardinal/device/vendor": {Data: []byte("0x0000\n")},
	}, probe.FileRunner{})

	gpus, err := p.GPUs()
	if err != nil {
		t.Fatal(err)
	}
	if len(gpus) != 2 {
		t.Fatalf("expected card1 and card10, got %d adapters", len(gpus))
	}

	amd := gpus[0]
	if raw := lookup(t, amd, probe.GpuModel); raw.Value != "AMD Radeon RX 6800" {
		t.Errorf("unexpected model %v", raw)
	}
	if raw := lookup(t, amd, probe.GpuMemory); raw.Value != "17163091968" || raw.Unit != probe.UnitBytes {
		t.Errorf("unexpected memory %v", raw)
	}

	virtio := gpus[1]
	if raw := lookup(t, virtio, probe.GpuVendor); raw.Value != "0x1af4" {
		t.Errorf("unexpected vendor %v", raw)
	}
	if _, err := virtio.Lookup(probe.GpuModel); !errors.Is(err, probe.ErrNotSupported) {
		t.Errorf("a card without pci slot has no lspci fallback, got %v", err)
	}
}

func TestGpuMemoryFromClinfo(t *testing.T) {
	device := "sys/class/drm/card0/device/"
	p := NewFS(fstest.MapFS{
		device + "vendor": {Data: []byte("0x8086\n")},
		device + "uevent": {Data: []byte("DRIVER=i915\nPCI_SLOT_NAME=0000:03:00.0\n")},
	}, probe.FileRunner{
		"clinfo --json": `{"devices": [{"online": [{"CL_DEVICE_GLOBAL_MEM_SIZE": 8096681984, "CL_DEVICE_PCI_BUS_INFO_KHR": "PCI-E, 0000:03:00.0"}]}]}`,
	})

	gpus, err := p.GPUs()
	if err != nil {
		t.Fatal(err)
	}
	if len(gpus) != 1 {
		t.Fatalf("expected one adapter, got %d", len(gpus))
	}
	if raw := lookup(t, gpus[0], probe.GpuMemory); raw.Value != uint64(8096681984) || raw.Unit != probe.UnitBytes {
		t.Errorf("unexpected memory %v", raw)
	}
}

func TestParseLshw(t *testing.T) {
	output := `  *-display
       description: VGA compatible controller
       product: GP102 [GeForce GTX 1080 Ti]
       vendor: NVIDIA Corporation
       physical id: 0
       bus info: pci@0000:01:00.0
  *-display
       description: VGA compatible controller
       product: Xeon E3-1200 v2/3rd Gen Core processor Graphics Controller
       vendor: Intel Corporation
`
	devices := parseLshw(output)
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}
	if devices[0].vendor != "NVIDIA Corporation" || devices[0].product != "GP102 [GeForce GTX 1080 Ti]" {
		t.Errorf("unexpected first device %+v", devices[0])
	}
	if devices[1].vendor != "Intel Corporation" {
		t.Errorf("unexpected second device %+v", devices[1])
	}

	p := NewFS(fstest.MapFS{}, probe.FileRunner{"lshw -C display": output})
	gpus, err := p.GPUs()
	if err != nil {
		t.Fatal(err)
	}
	if len(gpus) != 2 {
		t.Fatalf("expected the lshw fallback to report 2 adapters, got %d", len(gpus))
	}
}

func TestPlatformGpus(t *testing.T) {
	files := fstest.MapFS{
		"sys/class/drm/card0/device/uevent": {Data: []byte("DRIVER=v3d\nOF_NAME=gpu\nOF_COMPATIBLE_0=brcm,2712-v3d\n")},
		"sys/class/drm/card1/device/uevent": {Data: []byte("DRIVER=vc4-drm\nOF_NAME=gpu\nOF_COMPATIBLE_0=brcm,bcm2712-vc6\n")},
		"sys/class/drm/card2/device/uevent": {Data: []byte("DRIVER=simple-framebuffer\nOF_NAME=framebuffer\n")},
	}

	t.Run("lshw", func(t *testing.T) {
		lshw := "  *-display\n       product: VideoCore VII\n       vendor: Broadcom\n"
		gpus, err := NewFS(files, probe.FileRunner{"lshw -C display": lshw}).GPUs()
		if err != nil {
			t.Fatal(err)
		}
		if len(gpus) != 1 {
			t.Fatalf("expected the lshw adapter only, got %d adapters", len(gpus))
		}
		if raw := lookup(t, gpus[0], probe.GpuModel); raw.Value != "VideoCore VII" {
			t.Errorf("unexpected model %v", raw)
		}
	})

	t.Run("device tree", func(t *testing.T) {
		gpus, err := NewFS(files, probe.FileRunner{}).GPUs()
		if err != nil {
			t.Fatal(err)
		}
		if len(gpus) != 2 {
			t.Fatalf("expected v3d and vc4 without the framebuffer, got %d adapters", len(gpus))
		}
		if raw := lookup(t, gpus[0], probe.GpuVendor); raw.Value != "Broadcom" {
			t.Errorf("unexpected vendor %v", raw)
		}
		if raw := lookup(t, gpus[0], probe.GpuModel); raw.Value != "2712-v3d" {
			t.Errorf("unexpected model %v", raw)
		}
		if raw := lookup(t, gpus[1], probe.GpuModel); raw.Value != "bcm2712-vc6" {
			t.Errorf("unexpected model %v", raw)
		}
	})

	t.Run("pci card wins", func(t *testing.T) {
		withPci := fstest.MapFS{
			"sys/class/drm/card3/device/vendor": {Data: []byte("0x1002\n")},
			"sys/class/drm/card3/device/uevent": {Data: []byte("DRIVER=amdgpu\nPCI_SLOT_NAME=0000:01:00.0\n")},
		}
		for name, file := range files {
			withPci[name] = file
		}
		gpus, err := NewFS(withPci, probe.FileRunner{}).GPUs()
		if err != nil {
			t.Fatal(err)
		}
		if len(gpus) != 1 {
			t.Fatalf("expected the pci card only, got %d adapters", len(gpus))
		}
		if raw := lookup(t, gpus[0], probe.GpuVendor); raw.Value != "0x1002" {
			t.Errorf("unexpected vendor %v", raw)
		}
	})
}
