package tokentest

import (
	"github.com/iov-one/tokenext"
)

// Tx is a mock implementation of tokenext.Tx interface.
type Tx struct {
	// Msg is the message that this transaction is carrying.
	Msg tokenext.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ tokenext.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (tokenext.Msg, error) {
	if tx.Err != nil {
		return tx.Msg, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return tx.Msg.Unmarshal(raw)
}

// Msg is a mock implementation of tokenext.Msg interface.
type Msg struct {
	// RoutePath is returned by Path method call.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ tokenext.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(b []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = b
	return nil
}

func (m *Msg) Validate() error {
	return m.Err
}
