// Package routepath centralizes web route constants.
package routepath

const (
	// Home is the public landing page.
	Home = "/"
	// Login renders the sign-in form and accepts credentials.
	Login = "/login"
	// Signup accepts new account registrations.
	Signup = "/signup"
	// Identify renders the post-signup identity chooser.
	Identify = "/identify"
	// SetIdentity accepts the chosen account identity.
	SetIdentity = "/set_identity"
	// Dashboard renders the signed-in emissions dashboard.
	Dashboard = "/dashboard"
	// AddEmission accepts a new emission log entry.
	AddEmission = "/add_emission"
	// Marketplace renders leaderboards built from logged emissions.
	Marketplace = "/marketplace"
	// MarketplaceReference renders leaderboards built from the reference dataset.
	MarketplaceReference = "/marketplace/reference"
	// Logout clears the session and returns to the landing page.
	Logout = "/logout"
)
