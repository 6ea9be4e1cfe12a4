package internal

// Version is the icao release version.
const Version = "0.3.0"
