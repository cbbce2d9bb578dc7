package entity

import "encoding/binary"

// Layout is the RFC 4122 field breakdown of a UUID. For a version 4 value
// every field other than Version and Variant is random.
type Layout struct {
	TimeLow          uint32 `json:"time_low" yaml:"time_low"`
	TimeMid          uint16 `json:"time_mid" yaml:"time_mid"`
	TimeHiAndVersion uint16 `json:"time_hi_and_version" yaml:"time_hi_and_version"`
	Version          uint8  `json:"version" yaml:"version"`
	TimeHi           uint16 `json:"time_hi" yaml:"time_hi"`
	ClockSeqHi       uint8  `json:"clock_seq_hi_and_reserved" yaml:"clock_seq_hi_and_reserved"`
	ClockSeqLow      uint8  `json:"clock_seq_low" yaml:"clock_seq_low"`
	Variant          uint8  `json:"variant" yaml:"variant"`
	ClockSeq         uint16 `json:"clock_seq" yaml:"clock_seq"`
	Node             uint64 `json:"node" yaml:"node"`
}

// Layout splits u into its RFC fields.
func (u UUID) Layout() Layout {
	thv := binary.BigEndian.Uint16(u[6:8])

	var node [8]byte
	copy(node[2:], u[10:16])

	return Layout{
		TimeLow:          binary.BigEndian.Uint32(u[0:4]),
		TimeMid:          binary.BigEndian.Uint16(u[4:6]),
		TimeHiAndVersion: thv,
		Version:          u.Version(),
		TimeHi:           thv & 0x0fff,
		ClockSeqHi:       u[8],
		ClockSeqLow:      u[9],
		Variant:          u.Variant(),
		ClockSeq:         uint16(u[8]&0x3f)<<8 | uint16(u[9]),
		Node:             binary.BigEndian.Uint64(node[:]),
	}
}
