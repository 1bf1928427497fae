// Package perch captures a single instruction from the console and hands it
// to whatever picks up the command file.
package perch

// Version is the current perch release.
const Version = "0.1.0"
