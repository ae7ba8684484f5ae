package platform

// Package platform contains OS/platform integration glue: filesystem helpers
// used by the save service and revealing saved images in the OS file manager.
