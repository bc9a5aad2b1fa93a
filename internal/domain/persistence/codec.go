package persistence

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/nooros/backend/internal/shared/types"
)

var api = sonic.ConfigStd

// EncodeWindows serializes a window list
func EncodeWindows(windows []types.WindowInstance) ([]byte, error) {
	if windows == nil {
		windows = []types.WindowInstance{}
	}
	data, err := api.Marshal(windows)
	if err != nil {
		return nil, fmt.Errorf("encode windows: %w", err)
	}
	return data, nil
}

// DecodeWindows parses a window list
func DecodeWindows(data []byte) ([]types.WindowInstance, error) {
	var windows []types.WindowInstance
	if err := api.Unmarshal(data, &windows); err != nil {
		return nil, fmt.Errorf("decode windows: %w", err)
	}
	return windows, nil
}

// EncodeIcons serializes icon positions
func EncodeIcons(icons []types.DesktopIcon) ([]byte, error) {
	if icons == nil {
		icons = []types.DesktopIcon{}
	}
	data, err := api.Marshal(icons)
	if err != nil {
		return nil, fmt.Errorf("encode icons: %w", err)
	}
	return data, nil
}

// DecodeIcons parses icon positions
func DecodeIcons(data []byte) ([]types.DesktopIcon, error) {
	var icons []types.DesktopIcon
	if err := api.Unmarshal(data, &icons); err != nil {
		return nil, fmt.Errorf("decode icons: %w", err)
	}
	return icons, nil
}
