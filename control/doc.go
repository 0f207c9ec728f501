// Package control frames values in a byte stream with prefix coded control
// blocks.
//
// The first byte of every field is a control block. Its leading bits select
// the block type and the remaining bits hold data or a size:
//
//	| Byte       | Type           | Following bytes                            |
//	|------------|----------------|--------------------------------------------|
//	| 1xxx_xxxx  | Data           | none, 7 bits of data in the block          |
//	| 01ss_ssss  | Data Size      | s+1 bytes of data                          |
//	| 001x_xxxx  | Data + 1       | 1 byte, 13 bits of data with the block     |
//	| 0001_xxxx  | Data + 2       | 2 bytes, 20 bits of data with the block    |
//	| 0000_1sss  | Data Size Size | s+1 bytes of size n, then n+1 bytes        |
//	| 0000_0111  | (reserved)     | rejected                                   |
//	| 0000_0110  | Unbounded      | fields up to the matching Container End    |
//	| 0000_0101  | Bounded        | a data field holding n, then n+1 bytes     |
//	| 0000_0100  | Container End  | none                                       |
//	| 0000_001s  | Skip Size      | s+1 bytes of amount a, a+1 fields omitted  |
//	| 0000_0001  | Empty          | none                                       |
//	| 0000_0000  | Null           | none                                       |
//
// Sizes and amounts count from one, so no block ever describes zero bytes:
// zero length values use Empty and absent values use Null.
//
// A bounded container embeds an already encoded stream behind its length and
// can be skipped or copied without decoding. An unbounded container is
// written in one pass and must be scanned to be skipped.
//
// The integer and decimal packages write their values as single data fields,
// so small numbers cost one or two bytes:
//
//	e := control.NewEncoder(w)
//	err := e.Data([]byte{0x2a}) // 1010_1010
package control
