package config

// SceneConfig is the root config for scenes/<id>.yaml
type SceneConfig struct {
	ID       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	Scale    float64            `yaml:"scale"`
	Camera   PointConfig        `yaml:"camera"`
	Pan      *PanConfig         `yaml:"pan"`
	Layers   []SceneLayerConfig `yaml:"layers"`
	Sprites  []SpriteConfig     `yaml:"sprites"`
	Elements []ElementConfig    `yaml:"elements"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PanConfig moves the camera back and forth between the scene camera and
// (X, Y).
type PanConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Ticks  int     `yaml:"ticks"`
	Easing string  `yaml:"easing"`
	Loop   bool    `yaml:"loop"`
}

type SceneLayerConfig struct {
	Background string `yaml:"background"`
	Composite  string `yaml:"composite"`
}

type SpriteConfig struct {
	Name      string          `yaml:"name"`
	Frames    []string        `yaml:"frames"`
	Composite string          `yaml:"composite"`
	Behavior  *BehaviorConfig `yaml:"behavior"`
}

// BehaviorConfig selects a named animation hook and its parameters
type BehaviorConfig struct {
	Type  string `yaml:"type"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Every int    `yaml:"every"`
}

type ElementConfig struct {
	Sprite       string          `yaml:"sprite"`
	X            float64         `yaml:"x"`
	Y            float64         `yaml:"y"`
	Width        float64         `yaml:"width"`
	Height       float64         `yaml:"height"`
	Layer        int             `yaml:"layer"`
	Frame        int             `yaml:"frame"`
	Index        *int            `yaml:"index"`
	Fixed        bool            `yaml:"fixed"`
	SizeRelative bool            `yaml:"sizeRelative"`
	Hidden       bool            `yaml:"hidden"`
	Composite    string          `yaml:"composite"`
	Behavior     *BehaviorConfig `yaml:"behavior"`
	Repeat       *RepeatConfig   `yaml:"repeat"`
	// Also places extra copies at the same position on other layers.
	Also []PlacementConfig `yaml:"also"`
}

// RepeatConfig lays an element out on a Columns x Rows grid with cell
// spacing (DX, DY). JitterX/JitterY add a random offset in
// [-Jitter/2, Jitter/2) to every cell.
type RepeatConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	DX      float64 `yaml:"dx"`
	DY      float64 `yaml:"dy"`
	JitterX float64 `yaml:"jitterX"`
	JitterY float64 `yaml:"jitterY"`
}

type PlacementConfig struct {
	Layer int `yaml:"layer"`
	Frame int `yaml:"frame"`
}
