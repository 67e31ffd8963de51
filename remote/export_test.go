package remote

// StreamDelay exposes streamDelay to the external test package.
var StreamDelay = streamDelay

// MaxStreamDelay exposes maxStreamDelay to the external test package.
const MaxStreamDelay = maxStreamDelay
