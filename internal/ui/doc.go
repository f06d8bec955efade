package ui

// Package ui contains the Fyne-based desktop shell of the dashboard. It only
// reads and changes preferences through the locale and appearance stores and
// re-renders when they report a change. All UI strings are looked up by Key*
// constants.
