package version

const Framework = "v0.1.0"
