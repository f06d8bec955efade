package appearance

// Package appearance owns the light/dark theme choice. Until the user picks a
// theme the store follows the host's dark-mode signal; the first explicit
// toggle (or a stored choice found at startup) pins it for the session.
