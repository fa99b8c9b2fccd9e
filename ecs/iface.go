package ecs

import "unsafe"

// iface mirrors the internal memory layout of an interface{} so views can
// extract the data pointer without an allocation.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
