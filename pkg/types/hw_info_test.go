package types

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

func TestParseSystemInfo(t *testing.T) {
	machines, err := utils.SubDirectories("../../test_data/machines")
	if err != nil {
		t.Fatal(err)
	}

	for _, machine := range machines {
		t.Run(machine, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("../../test_data/machines", machine, "hardware-info.json"))
			if err != nil {
				t.Fatal(err)
			}

			var systemInfo SystemInfo
			err = json.Unmarshal(data, &systemInfo)
			if err != nil {
				t.Fatal(err)
			}

			if systemInfo.Gpus == nil {
				t.Error("gpus should be a list")
			}
			if !systemInfo.Os.Family.IsPresent() {
				t.Error("os family should be present")
			}
			if !systemInfo.Ram.Total.IsPresent() {
				t.Error("ram total should be present")
			}
			for _, gpu := range systemInfo.Gpus {
				if gpu.Cores.IsZero() {
					t.Error("gpu cores should be queried")
				}
			}
		})
	}
}
