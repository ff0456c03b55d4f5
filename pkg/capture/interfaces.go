package capture

import (
	"errors"
	"strings"

	"github.com/google/gopacket/pcap"
)

// InterfaceInfo contains basic interface information for display.
type InterfaceInfo struct {
	Name        string
	Description string
}

// ListInterfaces returns network interfaces suitable for capture. It filters
// out loopback, container, VM, and similar interfaces and trims descriptions
// for display.
func ListInterfaces() ([]InterfaceInfo, error) {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return nil, err
	}

	var result []InterfaceInfo
	for _, device := range devices {
		if device.Name == "any" {
			continue
		}
		if !IsValidCaptureInterface(device.Name) {
			continue
		}

		info := InterfaceInfo{Name: device.Name}
		if device.Description != "" {
			info.Description = trimDescription(device.Description)
		} else {
			info.Description = "Network interface"
		}
		result = append(result, info)
	}
	return result, nil
}

// DefaultDevice returns the first capture-suitable interface that has an
// address assigned. It drives sessions configured without an explicit
// device.
func DefaultDevice() (string, error) {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return "", err
	}
	for _, device := range devices {
		if device.Name == "any" || !IsValidCaptureInterface(device.Name) {
			continue
		}
		if len(device.Addresses) == 0 {
			continue
		}
		return device.Name, nil
	}
	return "", errors.New("no suitable capture device found")
}

// IsValidCaptureInterface returns true if the interface is suitable for
// capture. It filters out loopback, USB, bluetooth, container, VM, and
// tunnel interfaces.
func IsValidCaptureInterface(name string) bool {
	name = strings.ToLower(name)

	excludePatterns := []string{
		"lo", "loopback", // Loopback interfaces
		"usb", "bluetooth", // USB/Bluetooth interfaces
		"docker", "veth", // Container interfaces
		"vmnet", "vbox", // Virtual machine interfaces
		"isatap", "teredo", // Tunnel interfaces
	}

	for _, pattern := range excludePatterns {
		if strings.Contains(name, pattern) {
			return false
		}
	}
	return true
}

// trimDescription cleans up interface descriptions for display.
func trimDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if len(desc) > 50 {
		desc = desc[:50] + "..."
	}
	return desc
}
