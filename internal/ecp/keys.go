package ecp

// Key is an ECP keypress name
type Key string

// Keys understood by every Roku device
const (
	KeyHome          Key = "Home"
	KeyRev           Key = "Rev"
	KeyFwd           Key = "Fwd"
	KeyPlay          Key = "Play"
	KeySelect        Key = "Select"
	KeyLeft          Key = "Left"
	KeyRight         Key = "Right"
	KeyDown          Key = "Down"
	KeyUp            Key = "Up"
	KeyBack          Key = "Back"
	KeyInstantReplay Key = "InstantReplay"
	KeyInfo          Key = "Info"
	KeyBackspace     Key = "Backspace"
	KeySearch        Key = "Search"
	KeyEnter         Key = "Enter"
)

// Keys only Roku TVs accept
const (
	KeyPowerToggle Key = "Power"
	KeyVolumeUp    Key = "VolumeUp"
	KeyVolumeDown  Key = "VolumeDown"
	KeyVolumeMute  Key = "VolumeMute"
)

// literalPrefix prefixes a single text-entry character
const literalPrefix = "Lit_"
