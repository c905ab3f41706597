package platform

// Package platform contains OS and filesystem glue: the application base
// directory, preset discovery on disk, blocklist reading and revealing
// directories in the system file manager.
