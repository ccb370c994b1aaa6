package boltstore

import (
	bolt "go.etcd.io/bbolt"
)

// Cursor provides additional convenience functions around a bolt.Cursor
type Cursor interface {
	Reverse() Cursor
	Skip(count uint) Cursor
	Limit(count uint) Cursor
	First() (key, value []byte)
	Next() (key, value []byte)
}

type baseCursor struct {
	delegate *bolt.Cursor
	limit    int
	skip     int
}

func (c *baseCursor) next(move func() ([]byte, []byte), k, v []byte) ([]byte, []byte) {
	for ; c.skip > 0 && k != nil; k, v = move() {
		c.skip--
	}
	if c.limit == 0 {
		return nil, nil
	}
	c.limit--
	return k, v
}

type forwardCursor struct {
	baseCursor
}

type reverseCursor struct {
	baseCursor
}

func newForwardCursor(delegate *bolt.Cursor) Cursor {
	return &forwardCursor{baseCursor: baseCursor{delegate: delegate, limit: -1}}
}

func (c *forwardCursor) Reverse() Cursor {
	return &reverseCursor{baseCursor: c.baseCursor}
}

func (c *forwardCursor) Skip(count uint) Cursor {
	c.skip = int(count)
	return c
}

func (c *forwardCursor) Limit(count uint) Cursor {
	c.limit = int(count)
	return c
}

func (c *forwardCursor) First() (key []byte, value []byte) {
	k, v := c.delegate.First()
	return c.next(c.delegate.Next, k, v)
}

func (c *forwardCursor) Next() (key []byte, value []byte) {
	if c.limit == 0 {
		return nil, nil
	}
	k, v := c.delegate.Next()
	return c.next(c.delegate.Next, k, v)
}

//------------------------------------------------------------------------------

func newReverseCursor(delegate *bolt.Cursor) Cursor {
	return &reverseCursor{baseCursor: baseCursor{delegate: delegate, limit: -1}}
}

func (c *reverseCursor) Reverse() Cursor {
	return &forwardCursor{baseCursor: c.baseCursor}
}

func (c *reverseCursor) Skip(count uint) Cursor {
	c.skip = int(count)
	return c
}

func (c *reverseCursor) Limit(count uint) Cursor {
	c.limit = int(count)
	return c
}

func (c *reverseCursor) First() (key, value []byte) {
	k, v := c.delegate.Last()
	return c.next(c.delegate.Prev, k, v)
}

func (c *reverseCursor) Next() (key []byte, value []byte) {
	if c.limit == 0 {
		return nil, nil
	}
	k, v := c.delegate.Prev()
	return c.next(c.delegate.Prev, k, v)
}
