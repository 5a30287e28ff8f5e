package config

// Prefs are per-user view preferences persisted alongside the board under
// their own key. Unlike Config they change at runtime from inside the TUI.
type Prefs struct {
	Theme     string `json:"theme"`
	SortField string `json:"sortField"`
	SortDesc  bool   `json:"sortDesc"`
	ShowStats bool   `json:"showStats"`
}

// DefaultPrefs returns the preferences used before any have been saved.
func DefaultPrefs() Prefs {
	return Prefs{
		Theme:     "macchiato",
		SortField: "",
		ShowStats: true,
	}
}
