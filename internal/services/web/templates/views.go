package templates

import (
	"io"
	"net/http"

	"github.com/louisbranch/carbonledger/internal/emissions"
	"github.com/louisbranch/carbonledger/internal/leaderboard"
)

// Nav carries the viewer state the shared layout needs.
type Nav struct {
	SignedIn bool
	Email    string
}

// IndexView renders the public landing page.
type IndexView struct {
	Nav Nav
}

// LoginView renders the combined sign-in and sign-up page.
type LoginView struct {
	Nav          Nav
	ErrorMessage string
	Email        string
	Name         string
}

// IdentifyView renders the post-signup identity chooser.
type IdentifyView struct {
	Nav          Nav
	ErrorMessage string
}

// GasRow is one per-gas total on the dashboard.
type GasRow struct {
	Gas       string
	Kilograms float64
}

// DashboardView renders the signed-in emissions dashboard.
type DashboardView struct {
	Nav          Nav
	Email        string
	Totals       []GasRow
	TotalKg      float64
	ErrorMessage string
}

// BoardRow is one leaderboard entry row.
type BoardRow struct {
	Rank  int
	Entry leaderboard.Entry
}

// MarketplaceView renders a pair of leaderboards.
type MarketplaceView struct {
	Nav           Nav
	Title         string
	Hospitals     []BoardRow
	Manufacturers []BoardRow
}

// ErrorView renders the shared error page.
type ErrorView struct {
	Nav        Nav
	StatusCode int
	StatusText string
}

// NewDashboardView assembles the dashboard rows in tracked-gas order.
func NewDashboardView(nav Nav, email string, totals emissions.Totals) DashboardView {
	view := DashboardView{Nav: nav, Email: email, TotalKg: totals.Sum()}
	for _, gas := range emissions.TrackedGases() {
		view.Totals = append(view.Totals, GasRow{Gas: string(gas), Kilograms: totals[gas]})
	}
	return view
}

// NewBoardRows numbers leaderboard entries starting at rank one.
func NewBoardRows(entries []leaderboard.Entry) []BoardRow {
	rows := make([]BoardRow, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, BoardRow{Rank: i + 1, Entry: entry})
	}
	return rows
}

// NewErrorView fills the error page from an HTTP status code.
func NewErrorView(status int) ErrorView {
	text := http.StatusText(status)
	if text == "" {
		text = http.StatusText(http.StatusInternalServerError)
	}
	return ErrorView{StatusCode: status, StatusText: text}
}

// RenderIndex writes the landing page.
func RenderIndex(w io.Writer, view IndexView) error {
	return render(w, indexPage, view)
}

// RenderLogin writes the sign-in and sign-up page.
func RenderLogin(w io.Writer, view LoginView) error {
	return render(w, loginPage, view)
}

// RenderIdentify writes the identity chooser.
func RenderIdentify(w io.Writer, view IdentifyView) error {
	return render(w, identifyPage, view)
}

// RenderDashboard writes the emissions dashboard.
func RenderDashboard(w io.Writer, view DashboardView) error {
	return render(w, dashboardPage, view)
}

// RenderMarketplace writes a leaderboard page.
func RenderMarketplace(w io.Writer, view MarketplaceView) error {
	return render(w, marketplacePage, view)
}

// RenderError writes the shared error page.
func RenderError(w io.Writer, view ErrorView) error {
	return render(w, errorPage, view)
}
