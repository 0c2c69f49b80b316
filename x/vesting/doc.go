/*
Package vesting implements linear asset vesting schedules.

A vesting account holds a pool of value on a separate address and releases it
to a beneficiary linearly between a start time and start plus duration. Any
number of independent asset classes can be vested by a single account. Each
asset has its own released accumulator while the beneficiary, start and
duration are shared.

The schedule keeps no clock and no balance of its own. Time is taken from the
current block and the balance from the token ledger on every evaluation. A
deposit arriving after the schedule ended is therefore fully vested and
releasable on the next call.
*/
package vesting
