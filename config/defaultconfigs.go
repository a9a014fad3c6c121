package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		HighlightWinningLine: true,
		FullWidthLetters:     false,
		Colors: ConfigColors{
			BoardColor:    236,
			GridColor:     60,
			XColor:        203,
			OColor:        109,
			LabelColor:    245,
			CursorColorBG: 24,
			WinColorBG:    22,
		},
		Symbols: ConfigSymbols{
			X:     "X",
			O:     "O",
			Empty: " ",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		UI: UIConfig{
			Mouse:     true,
			FocusMode: false,
			LogLevel:  "info",
		},
	}
}
