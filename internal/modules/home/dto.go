package home

const (
	ScreenReservations = "Reservas"
	ScreenCameras      = "Câmeras"
	ScreenNotices      = "Avisos"
	ScreenOccurrences  = "Denúncia"
	ScreenFinance      = "Financeiro"
	ScreenRules        = "Regras"

	ActionOpenCreate = "open_create"

	filterAll   = "all"
	filterToday = "today"
)

type MenuItem struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
}

// Command is what the shell must do after a home interaction.
type Command struct {
	Action string `json:"action"`
	Screen string `json:"screen"`
}

type State struct {
	Greeting      string     `json:"greeting"`
	Menu          []MenuItem `json:"menu"`
	Selected      string     `json:"selected"`
	NoticesFilter string     `json:"notices_filter"`
	CameraFeeds   []string   `json:"camera_feeds,omitempty"`
	ShowFAB       bool       `json:"show_fab"`
}

type SelectRequest struct {
	Label string `json:"label" binding:"required"`
}
