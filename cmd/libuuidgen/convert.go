package main

import (
	"unsafe"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/boundary"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
)

// The helpers below turn raw C pointers into the typed pointers the boundary
// package expects. A nil pointer stays nil so the boundary reports it.

type uuidBuf = *[entity.Size]byte

func generate(out unsafe.Pointer) int32 {
	return int32(boundary.Generate(uuidBuf(out)))
}

func toString(src, dst unsafe.Pointer, size uintptr) int32 {
	return int32(boundary.ToString(uuidBuf(src), (*byte)(dst), size))
}

func getInfo(src, version, variant unsafe.Pointer) int32 {
	return int32(boundary.GetInfo(uuidBuf(src), (*uint8)(version), (*uint8)(variant)))
}

func compare(a, b, equal unsafe.Pointer) int32 {
	return int32(boundary.Compare(uuidBuf(a), uuidBuf(b), (*uint8)(equal)))
}
