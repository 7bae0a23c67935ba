/*
Package valconfig stores the keys every validator declares for itself.

Each validator account owns a single Config holding its consensus public
key and the two network layer keys. Only the owner may declare or rotate
its own keys, using SetConfigMsg. The validator set registry reads these
declarations when admitting a validator and when reconciling the roster.
*/
package valconfig
