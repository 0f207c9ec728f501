package store

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/decimal256/control"
	"github.com/calebcase/decimal256/decimal"
)

// Keys of the values kept by a Contract.
const (
	keyAdmin     = "admin"
	keyName      = "contract_id"
	keyPair      = "pair"
	keyToken     = "token"
	keyMaxSpread = "max_spread"
	keyFactory   = "pair_key/"
)

// spreadSchema frames the max spread. A null field is an unset spread.
var spreadSchema = decimal.Schema{Nullable: true}

// Pair is an ordered pair of token addresses.
type Pair struct {
	TokenA string `msgpack:"token_a"`
	TokenB string `msgpack:"token_b"`
}

// key returns the factory registration key of the pair: the prefix followed by
// the encoded pair, so no two pairs share a key whatever their addresses
// contain.
func (p Pair) key() (key string, err error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return "", err
	}

	return keyFactory + string(data), nil
}

// Contract persists the state of a trading contract. Decimals are stored as
// their raw integer only.
type Contract struct {
	s Store
}

// NewContract returns a Contract backed by s.
func NewContract(s Store) *Contract {
	return &Contract{s: s}
}

// SaveAdmin stores the address allowed to administer the contract.
func (c *Contract) SaveAdmin(address string) (err error) {
	return c.save(keyAdmin, address)
}

// Admin returns the stored admin address or ErrNotFound.
func (c *Contract) Admin() (address string, err error) {
	err = c.load(keyAdmin, &address)

	return address, err
}

// SaveName stores the contract's name.
func (c *Contract) SaveName(name string) (err error) {
	return c.save(keyName, name)
}

// Name returns the stored contract name or ErrNotFound.
func (c *Contract) Name() (name string, err error) {
	err = c.load(keyName, &name)

	return name, err
}

// SavePair stores the pair the contract trades.
func (c *Contract) SavePair(pair Pair) (err error) {
	return c.save(keyPair, pair)
}

// Pair returns the stored trading pair or ErrNotFound.
func (c *Contract) Pair() (pair Pair, err error) {
	err = c.load(keyPair, &pair)

	return pair, err
}

// SaveOutputToken stores the address of the token swaps pay out in.
func (c *Contract) SaveOutputToken(token string) (err error) {
	return c.save(keyToken, token)
}

// OutputToken returns the stored output token address or ErrNotFound.
func (c *Contract) OutputToken() (token string, err error) {
	err = c.load(keyToken, &token)

	return token, err
}

// SaveMaxSpread stores the largest spread a swap may accept.
func (c *Contract) SaveMaxSpread(spread decimal.Decimal) (err error) {
	return c.saveDecimal(keyMaxSpread, &spread)
}

// ClearMaxSpread unsets the max spread. MaxSpread then returns zero.
func (c *Contract) ClearMaxSpread() (err error) {
	return c.saveDecimal(keyMaxSpread, nil)
}

// MaxSpread returns the stored max spread, zero if it was cleared, or
// ErrNotFound if it was never saved.
func (c *Contract) MaxSpread() (spread decimal.Decimal, err error) {
	d, err := c.loadDecimal(keyMaxSpread)
	if err != nil {
		return spread, err
	}

	if d == nil {
		return decimal.Zero(), nil
	}

	return *d, nil
}

// SaveFactory registers the factory address that serves pair.
func (c *Contract) SaveFactory(pair Pair, factory string) (err error) {
	key, err := pair.key()
	if err != nil {
		return Error.Wrap(err)
	}

	return c.save(key, factory)
}

// Factory returns the factory address registered for pair.
func (c *Contract) Factory(pair Pair) (factory string, err error) {
	key, err := pair.key()
	if err != nil {
		return "", Error.Wrap(err)
	}

	err = c.load(key, &factory)

	return factory, err
}

func (c *Contract) save(key string, v interface{}) (err error) {
	defer Error.WrapP(&err)

	data, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	return c.s.Set(key, data)
}

func (c *Contract) load(key string, v interface{}) (err error) {
	defer Error.WrapP(&err)

	data, err := c.s.Get(key)
	if err != nil {
		return err
	}

	return msgpack.Unmarshal(data, v)
}

// saveDecimal stores d as a single control field.
func (c *Contract) saveDecimal(key string, d *decimal.Decimal) (err error) {
	defer Error.WrapP(&err)

	buf := &bytes.Buffer{}

	err = decimal.NewEncoder(spreadSchema, control.NewEncoder(buf)).Encode(d)
	if err != nil {
		return err
	}

	return c.s.Set(key, buf.Bytes())
}

// loadDecimal reads a value written by saveDecimal. Anything after the field
// is an error.
func (c *Contract) loadDecimal(key string) (d *decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	data, err := c.s.Get(key)
	if err != nil {
		return nil, err
	}

	cd := control.NewDecoder(bytes.NewReader(data))

	d, err = decimal.NewDecoder(spreadSchema, cd).Decode()
	if err != nil {
		return nil, err
	}

	if cd.Next() {
		return nil, Error.New("trailing %s field in %q", cd.Type(), key)
	}

	if cd.Err() != nil {
		return nil, cd.Err()
	}

	return d, nil
}
