package common

// PackageName is the metrics namespace and default service tag.
const PackageName = "gift_registry"

// Version is set at build time via -ldflags.
var Version = "dev"
