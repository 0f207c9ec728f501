// Package store persists the state that trading contracts keep next to their
// decimal math: the admin address, the traded pair, the output token, the max
// spread and the factory registered for each pair.
//
// Values are msgpack encoded. A decimal.Decimal is written as its raw integer
// in the zigzag layout of integer.Int.MarshalBinary, so the stored bytes do
// not depend on the display format.
package store
