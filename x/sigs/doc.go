/*
Package sigs provides basic authentication to verify the signature on a
transaction and maintain nonces for replay protection.

A verified transaction puts its signer address into the context, where
Authenticate exposes it to handlers.
*/
package sigs
