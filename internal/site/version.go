package site

// Version is the current release, set here and replaced at release time.
const Version = "0.3.0"
