package vesting

import (
	"github.com/iov-one/tokenext"
	"github.com/iov-one/tokenext/errors"
)

const (
	pathCreateVestingAccountMsg = "vesting/create"
	pathReleaseMsg              = "vesting/release"
)

var _ tokenext.Msg = (*CreateVestingAccountMsg)(nil)

// Path returns the routing path for this message.
func (CreateVestingAccountMsg) Path() string {
	return pathCreateVestingAccountMsg
}

// Validate ensures the message can be handled. The pool address is assigned
// by the handler and must not be part of the message.
func (m *CreateVestingAccountMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Field("Beneficiary", err, "invalid beneficiary address")
	}
	if err := m.Start.Validate(); err != nil {
		return errors.Field("Start", err, "invalid start time")
	}
	if err := m.Duration.Validate(); err != nil {
		return errors.Field("Duration", err, "invalid duration")
	}
	return nil
}

var _ tokenext.Msg = (*ReleaseMsg)(nil)

// Path returns the routing path for this message.
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Validate ensures the message can be handled.
func (m *ReleaseMsg) Validate() error {
	if len(m.AccountId) == 0 {
		return errors.Field("AccountId", errors.ErrEmpty, "missing account ID")
	}
	if m.Asset == "" {
		return errors.Field("Asset", errors.ErrEmpty, "missing asset identifier")
	}
	return nil
}
