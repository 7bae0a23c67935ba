/*
Package events implements append only event channels.

A channel is identified by a Handle. The handle is allocated once for an
owner and keeps the number of events emitted so far, so every event gets a
sequence number that is one greater than the previous one. Events are never
modified or removed.
*/
package events
