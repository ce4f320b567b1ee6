package wyre

// Version is the toolchain version reported by 'wyre version'.
const Version = "0.1.0"
