/*
Package tokenidx implements an enumeration index for non fungible tokens.

The index maintains two kinds of ordered sets: a single global set of all
existing token identifiers, and one set per owner with the identifiers that
owner currently holds. Both support constant cost membership change and
indexed lookup. Removal uses swap-and-pop, so iteration order is not stable
across removals. Only set membership is guaranteed.

The index is bookkeeping only. It trusts the caller to mirror every real
ownership transition into the matching mutation calls: a mint must be
followed by AddToken and AddTokenToOwner, a burn by RemoveToken and
RemoveTokenFromOwner, a transfer by RemoveTokenFromOwner of the old owner and
AddTokenToOwner of the new one. The index never cross-checks ownership
against the token ledger. A divergence caused by out of order calls surfaces
as a duplicate or not found error on the next mutation, never as silent
corruption.

Mutations perform several writes. Run them on a cache-wrapped store so that a
failed call leaves no partial state behind.
*/
package tokenidx
