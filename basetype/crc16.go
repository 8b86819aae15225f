package basetype

// crcTable is the FIT CRC-16 nibble table (spec §4.1). The codec folds
// each input byte's low nibble then its high nibble through this table;
// there is no general-purpose CRC-16 library in the ecosystem that
// implements this exact 16-entry table, so it is reproduced directly as
// the documented FIT algorithm rather than treated as a hand-rolled
// substitute for one.
var crcTable = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400,
	0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401,
	0x5000, 0x9C01, 0x8801, 0x4400,
}

// CRC16 computes the FIT checksum over data, starting from an initial
// value of 0.
func CRC16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crcStep(crc, b)
	}

	return crc
}

// crcStep folds one byte into crc, low nibble first then high nibble.
func crcStep(crc uint16, b byte) uint16 {
	crc = (crc >> 4) ^ crcTable[(crc^uint16(b))&0xF]
	crc = (crc >> 4) ^ crcTable[(crc^uint16(b>>4))&0xF]

	return crc
}
