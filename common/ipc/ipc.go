// Package ipc holds the json messages wlmaker prints for other programs
package ipc

// TODO: Look into adding support for sway and hyprland ipc so that wlmaker can interact with those in tool mode

type (
	// A mode an output supports
	OutputMode struct {
		// Mode height in pixel
		Height int `json:"height"`
		// Mode width in pixel
		Width int `json:"width"`
		// Refresh rate of the mode in millihertz
		RefreshRate int `json:"refresh_rate"`
		Preferred   bool `json:"preferred,omitempty"`
	}

	// Output listing printed by tool mode with -json
	OutputResponse struct {
		// List of all outputs. Only contains target output if specified
		Outputs []string `json:"outputs"`
		// A list of modes an output supports. Only set for -action modes
		OutputModes map[string][]OutputMode `json:"output_modes,omitempty"`
		// Nr of outputs found
		OutputsFound int `json:"outputs_found"`
	}

	// A window mapped to the toolkit root
	WindowInfo struct {
		Title     string `json:"title"`
		X         int    `json:"x"`
		Y         int    `json:"y"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Activated bool   `json:"activated"`
		Visible   bool   `json:"visible"`
	}

	// Window listing printed by the repl's "windows json"
	WindowsResponse struct {
		Windows []WindowInfo `json:"windows"`
	}
)
