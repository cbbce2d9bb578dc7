// Command libuuidgen builds the C shared library every foreign binding links
// against:
//
//	go build -buildmode=c-shared -o libuuid_generator.so ./cmd/libuuidgen
//
// Bindings should include uuid_generator.h from this directory, which
// declares the read-only inputs const. The header cgo generates next to the
// library lacks those qualifiers but describes the same ABI. Return values
// are the codes of pkgerror.Code (0, 1, 2, 3, 99).
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import "unsafe"

//export uuid_generate_v4
func uuid_generate_v4(uuidBytes *C.uint8_t) C.int32_t {
	return C.int32_t(generate(unsafe.Pointer(uuidBytes)))
}

//export uuid_to_string
func uuid_to_string(uuidBytes *C.uint8_t, uuidString *C.char, bufferSize C.size_t) C.int32_t {
	return C.int32_t(toString(unsafe.Pointer(uuidBytes), unsafe.Pointer(uuidString), uintptr(bufferSize)))
}

//export uuid_get_info
func uuid_get_info(uuidBytes *C.uint8_t, version *C.uint8_t, variant *C.uint8_t) C.int32_t {
	return C.int32_t(getInfo(unsafe.Pointer(uuidBytes), unsafe.Pointer(version), unsafe.Pointer(variant)))
}

//export uuid_compare
func uuid_compare(uuid1Bytes *C.uint8_t, uuid2Bytes *C.uint8_t, areEqual *C.uint8_t) C.int32_t {
	return C.int32_t(compare(unsafe.Pointer(uuid1Bytes), unsafe.Pointer(uuid2Bytes), unsafe.Pointer(areEqual)))
}

func main() {}
