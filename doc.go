/*

Package valset defines the interfaces shared by the validator set
application: storage, transactions, handlers and genesis initialization.
It also carries the context helpers (height, chain id, logger) every
extension relies on.

Extensions live under x/. The validator set registry itself is
implemented by x/validatorset, the per-validator key declarations by
x/valconfig and the change notification log by x/events.

*/

package valset
