package internal

// Version is the current lingopad release
const Version = "0.4.1"
