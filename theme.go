package locus

// Theme bundles the colors of a chart: the surface background, chart
// furniture (grid, axis, text) and the cycle used for data series.
// Themes are value types; modifying a copy leaves the built-ins alone,
// but the Cycle slice of a built-in must not be mutated in place.
type Theme struct {
	Background RGBA
	Grid       RGBA
	Text       RGBA
	Axis       RGBA
	Cycle      Palette
}

// Extend returns a copy of the theme with extra colors appended to the
// cycle.
func (t Theme) Extend(colors ...RGBA) Theme {
	cycle := make(Palette, 0, len(t.Cycle)+len(colors))
	cycle = append(cycle, t.Cycle...)
	cycle = append(cycle, colors...)
	t.Cycle = cycle
	return t
}

// DefaultTheme returns the theme used when none is configured.
func DefaultTheme() Theme {
	return MatplotlibLight
}

// Built-in themes.
var (
	// Dracula is a dark theme based on the Dracula editor palette.
	Dracula = Theme{
		Background: Hex("#282a36"),
		Grid:       Hex("#44475ac8"),
		Text:       Hex("#f8f8f2"),
		Axis:       Hex("#44475a"),
		Cycle: Palette{
			Hex("#ff5555"), // red
			Hex("#ffb86c"), // orange
			Hex("#f1968c"), // yellow
			Hex("#50fa7b"), // green
			Hex("#8be9fd"), // cyan
			Hex("#bd93f9"), // purple
			Hex("#ff79c6"), // pink
		},
	}

	// Nord is a dark theme based on the Nord palette.
	Nord = Theme{
		Background: Hex("#2e3440"),
		Grid:       Hex("#4c566a96"),
		Text:       Hex("#d8dee9"),
		Axis:       Hex("#434c5e"),
		Cycle: Palette{
			Hex("#bf616a"), // red
			Hex("#d08770"), // orange
			Hex("#ebcb8b"), // yellow
			Hex("#a3be8c"), // green
			Hex("#88c0d0"), // cyan
			Hex("#81a1c1"), // blue
			Hex("#b48ead"), // purple
		},
	}

	// Viridis is a dark theme with the viridis sequential cycle, suited
	// to gradient coloring via Palette.Ramp.
	Viridis = Theme{
		Background: Hex("#222222"),
		Grid:       Hex("#f0f0f028"),
		Text:       Hex("#f0f0f0"),
		Axis:       Hex("#505050"),
		Cycle: Palette{
			Hex("#440154"), // purple
			Hex("#3b528b"), // blue
			Hex("#21918c"), // teal
			Hex("#5ec962"), // green
			Hex("#fde725"), // yellow
		},
	}

	// SolarizedDark is the dark Solarized theme.
	SolarizedDark = Theme{
		Background: Hex("#002b36"),
		Grid:       Hex("#073642c8"),
		Text:       Hex("#839496"),
		Axis:       Hex("#586e75"),
		Cycle: Palette{
			Hex("#b58900"), // yellow
			Hex("#cb4b16"), // orange
			Hex("#dc322f"), // red
			Hex("#d33682"), // magenta
			Hex("#6c71c4"), // violet
			Hex("#268bd2"), // blue
			Hex("#2aa198"), // cyan
			Hex("#859900"), // green
		},
	}

	// SolarizedLight is the light Solarized theme.
	SolarizedLight = Theme{
		Background: Hex("#fdf6e3"),
		Grid:       Hex("#eee8d5"),
		Text:       Hex("#657b83"),
		Axis:       Hex("#93a1a1"),
		Cycle: Palette{
			Hex("#b58900"),
			Hex("#cb4b16"),
			Hex("#dc322f"),
			Hex("#d33682"),
			Hex("#268bd2"),
			Hex("#859900"),
		},
	}

	// GitHubDark matches the GitHub dark UI palette.
	GitHubDark = Theme{
		Background: Hex("#0d1117"),
		Grid:       Hex("#30363db4"),
		Text:       Hex("#c9d1d9"),
		Axis:       Hex("#30363d"),
		Cycle: Palette{
			Hex("#7ee787"), // green
			Hex("#79c0ff"), // blue
			Hex("#d299ff"), // purple
			Hex("#ff7b72"), // red
			Hex("#ffa657"), // orange
			Hex("#d2b284"), // tan
		},
	}

	// GitHubLight matches the GitHub light UI palette.
	GitHubLight = Theme{
		Background: Hex("#ffffff"),
		Grid:       Hex("#d0d7de96"),
		Text:       Hex("#1f2328"),
		Axis:       Hex("#1f2328"),
		Cycle: Palette{
			Hex("#0598fa"),
			Hex("#1a7f37"),
			Hex("#cf222e"),
			Hex("#9a6700"),
			Hex("#8250df"),
		},
	}

	// MatplotlibLight is a white theme with the classic matplotlib cycle.
	MatplotlibLight = Theme{
		Background: Hex("#ffffff"),
		Grid:       Hex("#969696"),
		Text:       Hex("#1e1e1e"),
		Axis:       Hex("#000000"),
		Cycle: Palette{
			Hex("#1f77b4"), // blue
			Hex("#ff7f0e"), // orange
			Hex("#2ca02c"), // green
			Hex("#d62728"), // red
			Hex("#9467bd"), // purple
			Hex("#8c564b"), // brown
			Hex("#e377c2"), // pink
		},
	}
)

// ThemeByName looks up a built-in theme by its conventional name, for
// command-line selection. Unknown names fall back to the default theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "dracula":
		return Dracula, true
	case "nord":
		return Nord, true
	case "viridis":
		return Viridis, true
	case "solarized-dark":
		return SolarizedDark, true
	case "solarized-light":
		return SolarizedLight, true
	case "github-dark":
		return GitHubDark, true
	case "github-light":
		return GitHubLight, true
	case "matplotlib", "matplotlib-light":
		return MatplotlibLight, true
	default:
		return DefaultTheme(), false
	}
}
