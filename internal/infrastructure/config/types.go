package config

// EngineConfig is the root config for engine.json
type EngineConfig struct {
	Display DisplayConfig `json:"display"`
	Loop    LoopConfig    `json:"loop"`
	Assets  AssetsConfig  `json:"assets"`
	Layers  []LayerConfig `json:"layers"`
	// Scenes lists the scene files (scenes/<id>.yaml) to load, in
	// registration order.
	Scenes []string `json:"scenes"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

type LoopConfig struct {
	TickRateMs   int  `json:"tickRateMs"`
	Looping      bool `json:"looping"`
	ActiveScene  int  `json:"activeScene"`
	IsolateHooks bool `json:"isolateHooks"`
	ShowFPS      bool `json:"showFps"`
	MaxCatchUp   int  `json:"maxCatchUp"`
}

type AssetsConfig struct {
	Root               string `json:"root"`
	MaxConcurrentLoads int    `json:"maxConcurrentLoads"`
	// SlowDrawMs logs sprite draws slower than this. 0 disables it.
	SlowDrawMs int `json:"slowDrawMs"`
}

// LayerConfig describes one stacked surface
type LayerConfig struct {
	// Stacking is the composite mode used to put the layer on the window.
	Stacking string `json:"stacking"`
}
