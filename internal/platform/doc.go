package platform

// Package platform contains the host integration glue: detecting the ambient
// locale from the OS and Fyne, and exposing the OS light/dark preference as a
// subscribable signal with cancellable subscriptions.
