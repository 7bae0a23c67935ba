/*
Package validatorset maintains the roster of consensus participants.

The roster lives in a single Registry stored under the authority address
configured at genesis. Bootstrap creates it once. Validators are admitted
while the chain is being initialized and afterwards their keys are only
refreshed by Reconfigure, which reads the keys every validator declared in
the valconfig extension. Whenever a refresh changes anything a ChangeEvent
carrying the full new roster is emitted on the registry event channel.

The application turns consecutive ChangeEvent snapshots into tendermint
validator updates, see ValidatorUpdates.
*/
package validatorset
