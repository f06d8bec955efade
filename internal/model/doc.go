package model

// Package model defines the closed value sets shared by the preference stores:
// display languages and theme modes. Both are typed strings so they can be
// persisted as-is and validated on the way back in.
